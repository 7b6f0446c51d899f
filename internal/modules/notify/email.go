package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendAPI = "https://api.resend.com/emails"
const bookingTemplateTag = "booking"

// ResendClient sends transactional email through the Resend HTTP API.
type ResendClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewResendClient(apiKey string) *ResendClient {
	return &ResendClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ResendClient) Configured() bool { return c.apiKey != "" }

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Bcc     []string `json:"bcc,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html"`
}

func (c *ResendClient) Send(ctx context.Context, from, to, replyTo, bcc, subject, html string) error {
	msg := resendEmail{From: from, To: []string{to}, ReplyTo: replyTo, Subject: subject, Html: html}
	if bcc != "" {
		msg.Bcc = []string{bcc}
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendAPI, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API error %s: %s", resp.Status, string(raw))
	}
	return nil
}

// EmailSender is the delivery half of the email notifier, extracted so tests
// can capture outgoing mail.
type EmailSender interface {
	Configured() bool
	Send(ctx context.Context, from, to, replyTo, bcc, subject, html string) error
}

// EmailNotifier sends the booking-confirmation email. A missing active
// template or missing API key is "feature not configured" and no-ops.
type EmailNotifier struct {
	bookings  bookingLoader
	packages  packageLoader
	templates templateSource
	sender    EmailSender
	loggerf   func(format string, args ...interface{})

	from    string
	replyTo string
	bcc     string
}

func NewEmailNotifier(bookings bookingLoader, packages packageLoader, templates templateSource, sender EmailSender, from, replyTo, bcc string, loggerf func(format string, args ...interface{})) *EmailNotifier {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &EmailNotifier{
		bookings:  bookings,
		packages:  packages,
		templates: templates,
		sender:    sender,
		loggerf:   loggerf,
		from:      from,
		replyTo:   replyTo,
		bcc:       bcc,
	}
}

func (n *EmailNotifier) Name() string { return "email" }

func (n *EmailNotifier) NotifyBookingPaid(ctx context.Context, bookingID int64) error {
	booking, err := n.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("load booking %d: %w", bookingID, err)
	}

	packageTitle := ""
	if pkg, perr := n.packages.GetByID(ctx, booking.PackageID); perr == nil {
		packageTitle = pkg.Title
	}

	tmpl, err := n.templates.GetActiveByTag(ctx, bookingTemplateTag)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}
	if tmpl == nil {
		n.loggerf("level=info msg=no active booking template, skipping email booking_id=%d", bookingID)
		return nil
	}
	if !n.sender.Configured() {
		n.loggerf("level=warn msg=email API key missing, skipping email booking_id=%d", bookingID)
		return nil
	}

	fields := BookingFields(booking, packageTitle)
	subject := RenderTokens(tmpl.Subject, fields)
	body := RenderTokens(tmpl.Body, fields)

	if err := n.sender.Send(ctx, n.from, booking.CustomerEmail, n.replyTo, n.bcc, subject, body); err != nil {
		return err
	}
	n.loggerf("level=info msg=booking email sent booking_id=%d to=%s", bookingID, booking.CustomerEmail)
	return nil
}
