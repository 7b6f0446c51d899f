package repository

import (
	"context"

	"gorm.io/gorm"

	"staykedarnath/internal/domain"
)

type HelpRepository struct {
	db *gorm.DB
}

func NewHelpRepository(db *gorm.DB) *HelpRepository {
	return &HelpRepository{db: db}
}

func (r *HelpRepository) ListPublished(ctx context.Context) ([]domain.HelpArticle, error) {
	var out []domain.HelpArticle
	err := r.db.WithContext(ctx).Where("published = ?", true).Order("id").Find(&out).Error
	return out, err
}

func (r *HelpRepository) Create(ctx context.Context, a *domain.HelpArticle) error {
	return r.db.WithContext(ctx).Create(a).Error
}
