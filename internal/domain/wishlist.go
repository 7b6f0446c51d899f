package domain

import "time"

// WishlistItem links a user to a package they are watching. When alerts are
// enabled and the package price drops below the target, the price-alert sweep
// emails the user and stamps AlertSentAt.
type WishlistItem struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	UserID       int64      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_package"`
	PackageID    int64      `json:"package_id" gorm:"not null;index;uniqueIndex:idx_user_package"`
	AlertEnabled bool       `json:"alert_enabled" gorm:"default:false;index"`
	TargetPrice  *float64   `json:"target_price,omitempty"`
	AlertSentAt  *time.Time `json:"alert_sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`

	User    *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Package *TripPackage `json:"package,omitempty" gorm:"foreignKey:PackageID"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }
