package content

import (
	"context"
	"errors"
	"strings"

	"staykedarnath/internal/domain"
)

var ErrValidation = errors.New("page key and field key are required")

type overrideStore interface {
	GetPage(ctx context.Context, pageKey string) ([]domain.ContentOverride, error)
	Upsert(ctx context.Context, o *domain.ContentOverride) error
	Delete(ctx context.Context, pageKey, fieldKey string) error
}

type Service struct {
	store overrideStore
}

func NewService(store overrideStore) *Service {
	return &Service{store: store}
}

// Page returns all overrides for a page as field_key → override, the shape
// the renderer merges over its built-in copy.
func (s *Service) Page(ctx context.Context, pageKey string) (map[string]domain.ContentOverride, error) {
	rows, err := s.store.GetPage(ctx, pageKey)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.ContentOverride, len(rows))
	for _, o := range rows {
		out[o.FieldKey] = o
	}
	return out, nil
}

func (s *Service) Save(ctx context.Context, o *domain.ContentOverride) error {
	o.PageKey = strings.TrimSpace(o.PageKey)
	o.FieldKey = strings.TrimSpace(o.FieldKey)
	if o.PageKey == "" || o.FieldKey == "" {
		return ErrValidation
	}
	if o.Kind == "" {
		o.Kind = "text"
	}
	return s.store.Upsert(ctx, o)
}

func (s *Service) Remove(ctx context.Context, pageKey, fieldKey string) error {
	if pageKey == "" || fieldKey == "" {
		return ErrValidation
	}
	return s.store.Delete(ctx, pageKey, fieldKey)
}
