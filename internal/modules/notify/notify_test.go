package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staykedarnath/internal/domain"
)

func TestRenderTokens_ReplacesAllOccurrences(t *testing.T) {
	body := "Dear {{customer_name}}, thank you {{customer_name}}! Amount: {{amount}}"
	out := RenderTokens(body, map[string]string{"customer_name": "Asha", "amount": "4999.00"})
	assert.Equal(t, "Dear Asha, thank you Asha! Amount: 4999.00", out)
}

func TestRenderTokens_UnknownTokenLeftIntact(t *testing.T) {
	out := RenderTokens("Hi {{nobody}}", map[string]string{"customer_name": "Asha"})
	assert.Equal(t, "Hi {{nobody}}", out)
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "919876543210"},
		{"98765-43210", "919876543210"},
		{"(987) 654-3210", "919876543210"},
		{"+91 98765 43210", "919876543210"}, // 12 digits after stripping, passes through
		{"12345", "12345"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in, "91"), "input %q", tc.in)
	}
}

/* ---- email notifier ---- */

type stubBookings struct {
	booking *domain.Booking
	err     error
}

func (s *stubBookings) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

type stubPackages struct {
	pkg *domain.TripPackage
}

func (s *stubPackages) GetByID(ctx context.Context, id int64) (*domain.TripPackage, error) {
	if s.pkg == nil {
		return nil, errors.New("not found")
	}
	return s.pkg, nil
}

type stubTemplates struct {
	tmpl *domain.MessageTemplate
	err  error
}

func (s *stubTemplates) GetActiveByTag(ctx context.Context, tag string) (*domain.MessageTemplate, error) {
	return s.tmpl, s.err
}

type capturingSender struct {
	configured bool
	sendErr    error
	to         string
	subject    string
	html       string
	bcc        string
	sends      int
}

func (c *capturingSender) Configured() bool { return c.configured }

func (c *capturingSender) Send(ctx context.Context, from, to, replyTo, bcc, subject, html string) error {
	c.sends++
	c.to, c.bcc, c.subject, c.html = to, bcc, subject, html
	return c.sendErr
}

func testBooking() *domain.Booking {
	d := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:            42,
		PackageID:     7,
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9876543210",
		Amount:        4999,
		TravelDate:    &d,
		Status:        domain.BookingPaid,
	}
}

func TestEmailNotifier_SendsRenderedTemplate(t *testing.T) {
	sender := &capturingSender{configured: true}
	n := NewEmailNotifier(
		&stubBookings{booking: testBooking()},
		&stubPackages{pkg: &domain.TripPackage{ID: 7, Title: "Kedarnath Darshan"}},
		&stubTemplates{tmpl: &domain.MessageTemplate{
			Tag:     "booking",
			Subject: "Booking {{booking_id}} confirmed",
			Body:    "Hi {{customer_name}}, {{package_name}} on {{travel_date}} for {{amount}}.",
		}},
		sender,
		"from@x", "reply@x", "bcc@x", nil,
	)

	require.NoError(t, n.NotifyBookingPaid(context.Background(), 42))
	assert.Equal(t, 1, sender.sends)
	assert.Equal(t, "asha@example.com", sender.to)
	assert.Equal(t, "bcc@x", sender.bcc)
	assert.Equal(t, "Booking SK-000042 confirmed", sender.subject)
	assert.Equal(t, "Hi Asha, Kedarnath Darshan on 14 Oct 2026 for 4999.00.", sender.html)
}

func TestEmailNotifier_NoTemplateIsSuccessfulNoop(t *testing.T) {
	sender := &capturingSender{configured: true}
	n := NewEmailNotifier(&stubBookings{booking: testBooking()}, &stubPackages{}, &stubTemplates{tmpl: nil}, sender, "f", "r", "b", nil)

	require.NoError(t, n.NotifyBookingPaid(context.Background(), 42))
	assert.Zero(t, sender.sends)
}

func TestEmailNotifier_MissingBookingIsFatal(t *testing.T) {
	sender := &capturingSender{configured: true}
	n := NewEmailNotifier(&stubBookings{err: errors.New("not found")}, &stubPackages{}, &stubTemplates{}, sender, "f", "r", "b", nil)

	assert.Error(t, n.NotifyBookingPaid(context.Background(), 42))
}

func TestEmailNotifier_ProviderFailureSurfaces(t *testing.T) {
	sender := &capturingSender{configured: true, sendErr: errors.New("resend 500")}
	n := NewEmailNotifier(
		&stubBookings{booking: testBooking()},
		&stubPackages{pkg: &domain.TripPackage{Title: "X"}},
		&stubTemplates{tmpl: &domain.MessageTemplate{Subject: "s", Body: "b"}},
		sender, "f", "r", "b", nil,
	)
	assert.Error(t, n.NotifyBookingPaid(context.Background(), 42))
}

/* ---- whatsapp notifier ---- */

type capturingTemplateSender struct {
	configured bool
	to         string
	template   string
	params     []string
	sends      int
}

func (c *capturingTemplateSender) Configured() bool { return c.configured }

func (c *capturingTemplateSender) SendTemplate(ctx context.Context, to, templateName string, params []string) error {
	c.sends++
	c.to, c.template, c.params = to, templateName, params
	return nil
}

func TestWhatsAppNotifier_SendsThreePositionalParams(t *testing.T) {
	sender := &capturingTemplateSender{configured: true}
	n := NewWhatsAppNotifier(
		&stubBookings{booking: testBooking()},
		&stubPackages{pkg: &domain.TripPackage{Title: "Kedarnath Darshan"}},
		sender, "booking_confirmation", "91", nil,
	)

	require.NoError(t, n.NotifyBookingPaid(context.Background(), 42))
	assert.Equal(t, "919876543210", sender.to)
	assert.Equal(t, "booking_confirmation", sender.template)
	assert.Equal(t, []string{"Asha", "Kedarnath Darshan", "14 Oct 2026"}, sender.params)
}

func TestWhatsAppNotifier_MissingCredsIsNoop(t *testing.T) {
	sender := &capturingTemplateSender{configured: false}
	n := NewWhatsAppNotifier(&stubBookings{booking: testBooking()}, &stubPackages{}, sender, "t", "91", nil)

	require.NoError(t, n.NotifyBookingPaid(context.Background(), 42))
	assert.Zero(t, sender.sends)
}
