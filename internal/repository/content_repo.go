package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staykedarnath/internal/domain"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) GetPage(ctx context.Context, pageKey string) ([]domain.ContentOverride, error) {
	var out []domain.ContentOverride
	err := r.db.WithContext(ctx).Where("page_key = ?", pageKey).Find(&out).Error
	return out, err
}

func (r *ContentRepository) Upsert(ctx context.Context, o *domain.ContentOverride) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page_key"}, {Name: "field_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "value", "updated_by", "updated_at"}),
	}).Create(o).Error
}

func (r *ContentRepository) Delete(ctx context.Context, pageKey, fieldKey string) error {
	return r.db.WithContext(ctx).
		Where("page_key = ? AND field_key = ?", pageKey, fieldKey).
		Delete(&domain.ContentOverride{}).Error
}
