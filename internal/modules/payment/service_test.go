package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"testing"
	"time"

	"staykedarnath/internal/domain"
)

type fakeProvider struct {
	lastAmount int64
	fail       error
}

func (f *fakeProvider) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*ProviderOrder, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.lastAmount = amountMinor
	return &ProviderOrder{ID: "order_test_1", Amount: amountMinor, Currency: currency, Receipt: receipt, Status: "created"}, nil
}

type fakeBookingStore struct {
	booking     *domain.Booking
	createErr   error
	markCalls   int
	markChanged bool
}

func (f *fakeBookingStore) Create(ctx context.Context, b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = 42
	f.booking = b
	return nil
}

func (f *fakeBookingStore) MarkPaidByOrderID(ctx context.Context, orderID, paymentID string, paidAt time.Time) (*domain.Booking, bool, error) {
	f.markCalls++
	if f.booking == nil || f.booking.ProviderOrderID != orderID {
		return nil, false, errors.New("booking not found")
	}
	changed := f.booking.Status == domain.BookingPending
	if changed {
		f.booking.Status = domain.BookingPaid
		f.booking.PaymentID = paymentID
	}
	f.markChanged = changed
	return f.booking, changed, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []int64
	err   error
}

func (f *fakeNotifier) Name() string { return "fake" }

func (f *fakeNotifier) NotifyBookingPaid(ctx context.Context, bookingID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, bookingID)
	return f.err
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func newTestService(store *fakeBookingStore, notifiers ...Notifier) *Service {
	return NewService(&fakeProvider{}, store, notifiers, "key_id", "secret", "INR", nil)
}

func TestCreateOrder_MinorUnitsAndPendingBooking(t *testing.T) {
	provider := &fakeProvider{}
	store := &fakeBookingStore{}
	svc := NewService(provider, store, nil, "key_id", "secret", "INR", nil)

	resp, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		PackageID: 7,
		Amount:    4999.50,
		CustomerDetails: CustomerDetails{
			Name: "Asha", Email: "asha@example.com", Phone: "9876543210",
		},
	}, nil)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if provider.lastAmount != 499950 {
		t.Fatalf("expected amount in minor units 499950, got %d", provider.lastAmount)
	}
	if store.booking == nil || store.booking.Status != domain.BookingPending {
		t.Fatalf("expected a pending booking, got %+v", store.booking)
	}
	if store.booking.ProviderOrderID != resp.OrderID {
		t.Fatalf("booking must carry the provider order id")
	}
	if resp.KeyID != "key_id" {
		t.Fatalf("response must expose the publishable key")
	}
}

func TestCreateOrder_MissingKeysIsFatal(t *testing.T) {
	svc := NewService(&fakeProvider{}, &fakeBookingStore{}, nil, "", "", "INR", nil)
	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{PackageID: 1, Amount: 100, CustomerDetails: CustomerDetails{Name: "x", Email: "x@y.z", Phone: "1"}}, nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestVerify_FlipsPendingToPaid(t *testing.T) {
	store := &fakeBookingStore{booking: &domain.Booking{ID: 42, ProviderOrderID: "order_test_1", Status: domain.BookingPending}}
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	b, err := svc.Verify(context.Background(), VerifyRequest{
		OrderID:   "order_test_1",
		PaymentID: "pay_9",
		Signature: sign("secret", "order_test_1", "pay_9"),
	})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if b.Status != domain.BookingPaid || b.PaymentID != "pay_9" {
		t.Fatalf("expected paid booking with payment id, got %+v", b)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != 42 {
		t.Fatalf("expected one notification for booking 42, got %v", notifier.calls)
	}
}

func TestVerify_TamperedSignatureLeavesPending(t *testing.T) {
	store := &fakeBookingStore{booking: &domain.Booking{ID: 42, ProviderOrderID: "order_test_1", Status: domain.BookingPending}}
	svc := newTestService(store)

	sig := sign("secret", "order_test_1", "pay_9")
	// flip one bit in the hex digest
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}

	_, err := svc.Verify(context.Background(), VerifyRequest{
		OrderID:   "order_test_1",
		PaymentID: "pay_9",
		Signature: string(tampered),
	})
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if store.booking.Status != domain.BookingPending {
		t.Fatalf("booking must stay pending after a bad signature, got %s", store.booking.Status)
	}
	if store.markCalls != 0 {
		t.Fatalf("no state mutation may happen before signature validation")
	}
}

func TestVerify_RepeatIsIdempotentOnStatus(t *testing.T) {
	store := &fakeBookingStore{booking: &domain.Booking{ID: 42, ProviderOrderID: "order_test_1", Status: domain.BookingPending}}
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	req := VerifyRequest{OrderID: "order_test_1", PaymentID: "pay_9", Signature: sign("secret", "order_test_1", "pay_9")}
	if _, err := svc.Verify(context.Background(), req); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	b, err := svc.Verify(context.Background(), req)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if b.Status != domain.BookingPaid {
		t.Fatalf("already-paid booking must stay paid, got %s", b.Status)
	}
	if store.markChanged {
		t.Fatalf("second verify must not report a state change")
	}
	// notifications are deliberately not guarded against re-sending
	if len(notifier.calls) != 2 {
		t.Fatalf("expected notifications on every verify, got %d", len(notifier.calls))
	}
}

func TestVerify_MissingFields(t *testing.T) {
	svc := newTestService(&fakeBookingStore{})
	_, err := svc.Verify(context.Background(), VerifyRequest{OrderID: "o", PaymentID: "", Signature: "s"})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestVerify_NotifierFailureDoesNotRollBack(t *testing.T) {
	store := &fakeBookingStore{booking: &domain.Booking{ID: 42, ProviderOrderID: "order_test_1", Status: domain.BookingPending}}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := newTestService(store, notifier)

	b, err := svc.Verify(context.Background(), VerifyRequest{
		OrderID:   "order_test_1",
		PaymentID: "pay_9",
		Signature: sign("secret", "order_test_1", "pay_9"),
	})
	if err != nil {
		t.Fatalf("notifier failure must not surface: %v", err)
	}
	if b.Status != domain.BookingPaid {
		t.Fatalf("paid status must survive notifier failure")
	}
}
