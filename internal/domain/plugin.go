package domain

import "time"

// PluginFlag is the persisted on/off switch for a registered site plugin.
// The registry itself is a static map in code; only the flag lives in the DB.
type PluginFlag struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Enabled   bool      `json:"enabled" gorm:"default:false"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PluginFlag) TableName() string { return "plugin_flags" }
