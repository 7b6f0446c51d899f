package domain

import "time"

// TripPackage is a published pilgrimage package: fixed price, duration and a
// cover image served from object storage.
type TripPackage struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	CoverImage   string    `json:"cover_image,omitempty"`
	Active       bool      `json:"active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (TripPackage) TableName() string { return "trip_packages" }
