package domain

import "time"

type BannerEventKind string

const (
	BannerImpression BannerEventKind = "impression"
	BannerClick      BannerEventKind = "click"
)

// BannerEvent is one recorded impression or click. Impressions are
// deduplicated per (session, banner) upstream; clicks are recorded as-is.
type BannerEvent struct {
	ID         int64           `json:"id" gorm:"primaryKey"`
	BannerID   int64           `json:"banner_id" gorm:"index;not null"`
	Kind       BannerEventKind `json:"kind" gorm:"type:varchar(16);index"`
	SessionID  string          `json:"session_id" gorm:"type:varchar(64);index"`
	PageURL    string          `json:"page_url"`
	Referrer   string          `json:"referrer,omitempty"`
	DeviceType string          `json:"device_type" gorm:"type:varchar(16)"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (BannerEvent) TableName() string { return "banner_events" }
