package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"staykedarnath/internal/domain"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	PackageID       int64      `gorm:"column:package_id"`
	UserID          *int64     `gorm:"column:user_id"`
	CustomerName    string     `gorm:"column:customer_name"`
	CustomerEmail   string     `gorm:"column:customer_email"`
	CustomerPhone   string     `gorm:"column:customer_phone"`
	TravelDate      *time.Time `gorm:"column:travel_date"`
	Amount          float64    `gorm:"column:amount"`
	Currency        string     `gorm:"column:currency"`
	ProviderOrderID string     `gorm:"column:provider_order_id"`
	PaymentID       string     `gorm:"column:payment_id"`
	Status          string     `gorm:"column:status"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		PackageID:       m.PackageID,
		UserID:          m.UserID,
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		CustomerPhone:   m.CustomerPhone,
		TravelDate:      m.TravelDate,
		Amount:          m.Amount,
		Currency:        m.Currency,
		ProviderOrderID: m.ProviderOrderID,
		PaymentID:       m.PaymentID,
		Status:          domain.BookingStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		PackageID:       b.PackageID,
		UserID:          b.UserID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		TravelDate:      b.TravelDate,
		Amount:          b.Amount,
		Currency:        b.Currency,
		ProviderOrderID: b.ProviderOrderID,
		PaymentID:       b.PaymentID,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	b.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByProviderOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).Where("provider_order_id = ?", orderID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// MarkPaidByOrderID flips the booking matched by provider order id to paid and
// records the payment id. The WHERE guard keeps the transition one-way:
// a booking that is already paid is left untouched (changed=false), and
// nothing ever moves backward.
func (r *BookingRepository) MarkPaidByOrderID(ctx context.Context, orderID, paymentID string, paidAt time.Time) (*domain.Booking, bool, error) {
	res := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("provider_order_id = ? AND status = ?", orderID, string(domain.BookingPending)).
		Updates(map[string]any{
			"status":     string(domain.BookingPaid),
			"payment_id": paymentID,
			"updated_at": paidAt,
		})
	if res.Error != nil {
		return nil, false, res.Error
	}

	b, err := r.GetByProviderOrderID(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	return b, res.RowsAffected > 0, nil
}
