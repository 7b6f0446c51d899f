package repository

import (
	"context"

	"gorm.io/gorm"

	"staykedarnath/internal/domain"
)

type BannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

func (r *BannerRepository) Insert(ctx context.Context, e *domain.BannerEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// HasImpression reports whether this session already produced an impression
// for the banner. Used as a second dedupe layer behind the in-memory marker.
func (r *BannerRepository) HasImpression(ctx context.Context, sessionID string, bannerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.BannerEvent{}).
		Where("session_id = ? AND banner_id = ? AND kind = ?", sessionID, bannerID, string(domain.BannerImpression)).
		Count(&count).Error
	return count > 0, err
}
