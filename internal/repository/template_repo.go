package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"staykedarnath/internal/domain"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// GetActiveByTag returns the single active template for a tag, or (nil, nil)
// when none is configured. Callers treat the nil template as "feature not
// configured", not as an error.
func (r *TemplateRepository) GetActiveByTag(ctx context.Context, tag string) (*domain.MessageTemplate, error) {
	var t domain.MessageTemplate
	err := r.db.WithContext(ctx).
		Where("tag = ? AND active = ?", tag, true).
		Order("updated_at DESC").
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
