package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"staykedarnath/internal/domain"
	jwtsvc "staykedarnath/internal/pkg/jwt"
	"staykedarnath/internal/repository"
)

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	IsAllowlisted(ctx context.Context, email string) (bool, error)
}

type Service struct {
	users userStore
	jwt   *jwtsvc.Service
}

func NewService(users userStore, jwt *jwtsvc.Service) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, _ := s.users.GetByEmail(ctx, email); existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		Name:         req.Name,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.session(ctx, u)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.session(ctx, u)
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	role, err := s.ResolveRole(ctx, u.ID, u.Email)
	if err == nil {
		u.Role = domain.UserRole(role)
	}
	return u, nil
}

// ResolveRole returns the caller's effective role. The profile row is the
// source of truth for customer/editor; an admin claim additionally needs an
// allow-list row, otherwise it degrades to the profile's non-admin meaning.
func (s *Service) ResolveRole(ctx context.Context, userID int64, email string) (string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if u.Role != domain.RoleAdmin {
		return string(u.Role), nil
	}

	allowed, err := s.users.IsAllowlisted(ctx, u.Email)
	if err != nil {
		return "", err
	}
	if !allowed {
		return string(domain.RoleCustomer), nil
	}
	return string(domain.RoleAdmin), nil
}

func (s *Service) session(ctx context.Context, u *domain.User) (*SessionResponse, error) {
	role, err := s.ResolveRole(ctx, u.ID, u.Email)
	if err != nil {
		role = string(u.Role)
	}
	token, err := s.jwt.GenerateToken(u.ID, u.Email, role)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{Token: token, User: u}, nil
}
