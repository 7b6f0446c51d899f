package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staykedarnath/internal/domain"
)

type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

func (r *WishlistRepository) Add(ctx context.Context, item *domain.WishlistItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "package_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"alert_enabled", "target_price"}),
	}).Create(item).Error
}

func (r *WishlistRepository) Remove(ctx context.Context, userID, packageID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND package_id = ?", userID, packageID).
		Delete(&domain.WishlistItem{}).Error
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID int64) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Package").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ListAlertCandidates returns every alert-enabled entry with its package and
// user preloaded. Filtering on price and resend window happens in the sweep.
func (r *WishlistRepository) ListAlertCandidates(ctx context.Context) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Package").
		Preload("User").
		Where("alert_enabled = ?", true).
		Find(&out).Error
	return out, err
}

func (r *WishlistRepository) StampAlertSent(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.WishlistItem{}).
		Where("id = ?", id).
		Update("alert_sent_at", at).Error
}
