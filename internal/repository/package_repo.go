package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staykedarnath/internal/domain"
)

var ErrPackageNotFound = errors.New("package not found")

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) ListActive(ctx context.Context) ([]domain.TripPackage, error) {
	var out []domain.TripPackage
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&out).Error
	return out, err
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.TripPackage, error) {
	var p domain.TripPackage
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PackageRepository) GetPriceByID(ctx context.Context, id int64) (float64, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return p.Price, nil
}

// Upsert inserts or replaces a package by slug.
func (r *PackageRepository) Upsert(ctx context.Context, p *domain.TripPackage) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		UpdateAll: true,
	}).Create(p).Error
}
