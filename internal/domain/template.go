package domain

import "time"

// MessageTemplate holds transactional email copy with {{token}} placeholders
// substituted at send time. At most one active template per tag is used.
type MessageTemplate struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Tag       string    `json:"tag" gorm:"index;not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	Active    bool      `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MessageTemplate) TableName() string { return "message_templates" }
