package wishlist

import (
	"context"
	"errors"
	"time"

	"staykedarnath/internal/domain"
)

var ErrValidation = errors.New("validation error")

type wishlistStore interface {
	Add(ctx context.Context, item *domain.WishlistItem) error
	Remove(ctx context.Context, userID, packageID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.WishlistItem, error)
	ListAlertCandidates(ctx context.Context) ([]domain.WishlistItem, error)
	StampAlertSent(ctx context.Context, id int64, at time.Time) error
}

type Service struct {
	items wishlistStore
}

func NewService(items wishlistStore) *Service {
	return &Service{items: items}
}

func (s *Service) Add(ctx context.Context, userID, packageID int64, alertEnabled bool, targetPrice *float64) (*domain.WishlistItem, error) {
	if packageID <= 0 {
		return nil, ErrValidation
	}
	if targetPrice != nil && *targetPrice <= 0 {
		return nil, ErrValidation
	}

	item := &domain.WishlistItem{
		UserID:       userID,
		PackageID:    packageID,
		AlertEnabled: alertEnabled,
		TargetPrice:  targetPrice,
	}
	if err := s.items.Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Remove(ctx context.Context, userID, packageID int64) error {
	return s.items.Remove(ctx, userID, packageID)
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.WishlistItem, error) {
	return s.items.ListByUser(ctx, userID)
}
