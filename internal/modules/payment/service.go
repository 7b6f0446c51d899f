package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sync"
	"time"

	"staykedarnath/internal/domain"
)

type Service struct {
	provider  orderCreator
	bookings  bookingStore
	notifiers []Notifier
	loggerf   func(format string, args ...interface{})

	keyID     string
	keySecret string
	currency  string
}

func NewService(provider orderCreator, bookings bookingStore, notifiers []Notifier, keyID, keySecret, currency string, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		provider:  provider,
		bookings:  bookings,
		notifiers: notifiers,
		loggerf:   loggerf,
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
	}
}

// CreateOrder creates a provider order and a pending booking carrying the
// provider order id. The booking insert runs after the order succeeds; if the
// insert then fails the provider order stays without a booking row — there is
// no compensating transaction for that divergence.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest, userID *int64) (*CreateOrderResponse, error) {
	if s.keyID == "" || s.keySecret == "" {
		return nil, ErrNotConfigured
	}

	amountMinor := int64(math.Round(req.Amount * 100))
	receipt := fmt.Sprintf("pkg_%d_%d", req.PackageID, time.Now().Unix())

	order, err := s.provider.CreateOrder(ctx, amountMinor, s.currency, receipt, map[string]string{
		"package_id":     fmt.Sprintf("%d", req.PackageID),
		"customer_email": req.CustomerDetails.Email,
	})
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		PackageID:       req.PackageID,
		UserID:          userID,
		CustomerName:    req.CustomerDetails.Name,
		CustomerEmail:   req.CustomerDetails.Email,
		CustomerPhone:   req.CustomerDetails.Phone,
		Amount:          req.Amount,
		Currency:        order.Currency,
		ProviderOrderID: order.ID,
		Status:          domain.BookingPending,
	}
	if d := parseTravelDate(req.CustomerDetails.TravelDate); d != nil {
		b.TravelDate = d
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		s.loggerf("level=error msg=booking insert failed after order creation order_id=%s err=%v", order.ID, err)
		return nil, fmt.Errorf("save booking failed: %w", err)
	}

	return &CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.keyID,
	}, nil
}

// Verify recomputes the HMAC over "orderId|paymentId" and, on match, flips
// the matching booking to paid. This is the only code path that writes the
// paid status. Notifiers then run together, best-effort.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) (*domain.Booking, error) {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return nil, ErrMissingField
	}

	if !s.signatureValid(req.OrderID, req.PaymentID, req.Signature) {
		return nil, ErrInvalidSignature
	}

	booking, changed, err := s.bookings.MarkPaidByOrderID(ctx, req.OrderID, req.PaymentID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !changed {
		s.loggerf("level=info msg=verification repeat, booking already paid order_id=%s", req.OrderID)
	}

	s.fanOutNotifications(booking.ID)
	return booking, nil
}

func (s *Service) signatureValid(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *Service) fanOutNotifications(bookingID int64) {
	var wg sync.WaitGroup
	for _, n := range s.notifiers {
		wg.Add(1)
		go func(n Notifier) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := n.NotifyBookingPaid(ctx, bookingID); err != nil {
				s.loggerf("level=error msg=notifier failed notifier=%s booking_id=%d err=%v", n.Name(), bookingID, err)
			}
		}(n)
	}
	wg.Wait()
}

func parseTravelDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &d
}
