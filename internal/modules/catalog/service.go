package catalog

import (
	"context"

	"staykedarnath/internal/domain"
)

type packageStore interface {
	ListActive(ctx context.Context) ([]domain.TripPackage, error)
	GetByID(ctx context.Context, id int64) (*domain.TripPackage, error)
	Upsert(ctx context.Context, p *domain.TripPackage) error
}

type helpStore interface {
	ListPublished(ctx context.Context) ([]domain.HelpArticle, error)
	Create(ctx context.Context, a *domain.HelpArticle) error
}

type Service struct {
	packages packageStore
	help     helpStore
}

func NewService(packages packageStore, help helpStore) *Service {
	return &Service{packages: packages, help: help}
}

func (s *Service) ListPackages(ctx context.Context) ([]domain.TripPackage, error) {
	return s.packages.ListActive(ctx)
}

func (s *Service) GetPackage(ctx context.Context, id int64) (*domain.TripPackage, error) {
	return s.packages.GetByID(ctx, id)
}

func (s *Service) UpsertPackage(ctx context.Context, p *domain.TripPackage) error {
	return s.packages.Upsert(ctx, p)
}

func (s *Service) CreateHelpArticle(ctx context.Context, a *domain.HelpArticle) error {
	return s.help.Create(ctx, a)
}
