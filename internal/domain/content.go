package domain

import "time"

// ContentOverride is one editable text/image slot on a marketing page,
// keyed by (page, field). The stored value wins over the built-in copy.
type ContentOverride struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	PageKey   string    `json:"page_key" gorm:"not null;index;uniqueIndex:idx_page_field"`
	FieldKey  string    `json:"field_key" gorm:"not null;uniqueIndex:idx_page_field"`
	Kind      string    `json:"kind" gorm:"type:varchar(16);default:'text'"`
	Value     string    `json:"value" gorm:"type:text"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContentOverride) TableName() string { return "content_overrides" }
