package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staykedarnath/internal/domain"
)

type PluginRepository struct {
	db *gorm.DB
}

func NewPluginRepository(db *gorm.DB) *PluginRepository {
	return &PluginRepository{db: db}
}

// Flags returns the enabled state per plugin name. Plugins with no row are
// treated as disabled by the registry.
func (r *PluginRepository) Flags(ctx context.Context) (map[string]bool, error) {
	var rows []domain.PluginFlag
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(rows))
	for _, f := range rows {
		out[f.Name] = f.Enabled
	}
	return out, nil
}

func (r *PluginRepository) SetEnabled(ctx context.Context, name string, enabled bool) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"}),
	}).Create(&domain.PluginFlag{Name: name, Enabled: enabled}).Error
}
