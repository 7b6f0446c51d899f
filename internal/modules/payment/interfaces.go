package payment

import (
	"context"
	"time"

	"staykedarnath/internal/domain"
)

type orderCreator interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*ProviderOrder, error)
}

type bookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	MarkPaidByOrderID(ctx context.Context, orderID, paymentID string, paidAt time.Time) (*domain.Booking, bool, error)
}

// Notifier is a post-payment side channel. Failures are logged, never
// propagated: payment confirmation is authoritative.
type Notifier interface {
	Name() string
	NotifyBookingPaid(ctx context.Context, bookingID int64) error
}
