package domain

import "time"

// HelpArticle is a searchable help-center entry.
type HelpArticle struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body" gorm:"type:text"`
	Category  string    `json:"category,omitempty" gorm:"index"`
	Published bool      `json:"published" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (HelpArticle) TableName() string { return "help_articles" }
