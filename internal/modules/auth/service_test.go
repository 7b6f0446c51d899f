package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"staykedarnath/internal/domain"
	jwtsvc "staykedarnath/internal/pkg/jwt"
	"staykedarnath/internal/repository"
)

type fakeUserStore struct {
	users     map[int64]*domain.User
	allowlist map[string]bool
	nextID    int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*domain.User{}, allowlist: map[string]bool{}}
}

func (f *fakeUserStore) Create(ctx context.Context, u *domain.User) error {
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) IsAllowlisted(ctx context.Context, email string) (bool, error) {
	return f.allowlist[email], nil
}

func newTestService(store *fakeUserStore) *Service {
	return NewService(store, jwtsvc.New("test-secret", time.Hour))
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	sess, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Asha@Example.com",
		Password: "secret-pass",
		Name:     "Asha",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "asha@example.com", sess.User.Email)
	assert.Equal(t, domain.RoleCustomer, sess.User.Role)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email:    "asha@example.com",
		Password: "other-pass",
		Name:     "Asha",
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	login, err := svc.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "secret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "secret-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveRoleRequiresAllowlistForAdmin(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	admin := &domain.User{Email: "ops@staykedarnath.com", PasswordHash: string(hash), Role: domain.RoleAdmin}
	require.NoError(t, store.Create(context.Background(), admin))

	// admin profile without an allow-list row degrades to customer
	role, err := svc.ResolveRole(context.Background(), admin.ID, admin.Email)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleCustomer), role)

	store.allowlist[admin.Email] = true
	role, err = svc.ResolveRole(context.Background(), admin.ID, admin.Email)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleAdmin), role)
}

func TestResolveRolePassesThroughNonAdmin(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	editor := &domain.User{Email: "editor@staykedarnath.com", Role: domain.RoleEditor}
	require.NoError(t, store.Create(context.Background(), editor))

	role, err := svc.ResolveRole(context.Background(), editor.ID, editor.Email)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleEditor), role)
}
