package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingPaid      BookingStatus = "paid"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a customer's package reservation and its payment lifecycle.
// Status moves pending -> paid only; payment verification is the sole writer
// of "paid".
type Booking struct {
	ID              int64         `json:"id" gorm:"primaryKey"`
	PackageID       int64         `json:"package_id" gorm:"index;not null"`
	UserID          *int64        `json:"user_id,omitempty" gorm:"index"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone"`
	TravelDate      *time.Time    `json:"travel_date,omitempty"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency" gorm:"type:varchar(8);default:'INR'"`
	ProviderOrderID string        `json:"provider_order_id" gorm:"uniqueIndex"`
	PaymentID       string        `json:"payment_id,omitempty"`
	Status          BookingStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Package *TripPackage `json:"package,omitempty" gorm:"foreignKey:PackageID"`
}

func (Booking) TableName() string { return "bookings" }
