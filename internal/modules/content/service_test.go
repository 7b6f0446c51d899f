package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staykedarnath/internal/domain"
)

type fakeOverrideStore struct {
	rows []domain.ContentOverride
}

func (f *fakeOverrideStore) GetPage(ctx context.Context, pageKey string) ([]domain.ContentOverride, error) {
	var out []domain.ContentOverride
	for _, o := range f.rows {
		if o.PageKey == pageKey {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOverrideStore) Upsert(ctx context.Context, o *domain.ContentOverride) error {
	for i, existing := range f.rows {
		if existing.PageKey == o.PageKey && existing.FieldKey == o.FieldKey {
			f.rows[i] = *o
			return nil
		}
	}
	f.rows = append(f.rows, *o)
	return nil
}

func (f *fakeOverrideStore) Delete(ctx context.Context, pageKey, fieldKey string) error {
	for i, o := range f.rows {
		if o.PageKey == pageKey && o.FieldKey == fieldKey {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestPageKeysOverridesByField(t *testing.T) {
	store := &fakeOverrideStore{rows: []domain.ContentOverride{
		{PageKey: "home", FieldKey: "hero_title", Value: "Custom headline"},
		{PageKey: "home", FieldKey: "hero_image", Kind: "image", Value: "https://cdn.example.com/hero.jpg"},
		{PageKey: "about", FieldKey: "hero_title", Value: "Other page"},
	}}
	svc := NewService(store)

	page, err := svc.Page(context.Background(), "home")
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Custom headline", page["hero_title"].Value)
	assert.Equal(t, "image", page["hero_image"].Kind)
}

func TestSaveUpsertsAndDefaultsKind(t *testing.T) {
	store := &fakeOverrideStore{}
	svc := NewService(store)

	o := &domain.ContentOverride{PageKey: " home ", FieldKey: "hero_title", Value: "v1"}
	require.NoError(t, svc.Save(context.Background(), o))
	assert.Equal(t, "home", o.PageKey)
	assert.Equal(t, "text", o.Kind)

	require.NoError(t, svc.Save(context.Background(), &domain.ContentOverride{
		PageKey: "home", FieldKey: "hero_title", Value: "v2",
	}))
	page, _ := svc.Page(context.Background(), "home")
	require.Len(t, page, 1)
	assert.Equal(t, "v2", page["hero_title"].Value)
}

func TestSaveRejectsMissingKeys(t *testing.T) {
	svc := NewService(&fakeOverrideStore{})
	err := svc.Save(context.Background(), &domain.ContentOverride{PageKey: "home"})
	assert.ErrorIs(t, err, ErrValidation)
}
