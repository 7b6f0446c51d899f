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

const whatsappGraphBase = "https://graph.facebook.com/v19.0"

// WhatsAppClient sends pre-approved template messages through the WhatsApp
// Business Cloud API.
type WhatsAppClient struct {
	accessToken string
	phoneID     string
	baseURL     string
	httpClient  *http.Client
}

func NewWhatsAppClient(accessToken, phoneID string) *WhatsAppClient {
	return &WhatsAppClient{
		accessToken: accessToken,
		phoneID:     phoneID,
		baseURL:     whatsappGraphBase,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *WhatsAppClient) Configured() bool {
	return c.accessToken != "" && c.phoneID != ""
}

type waTextParam struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type waComponent struct {
	Type       string        `json:"type"`
	Parameters []waTextParam `json:"parameters"`
}

type waTemplateMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Template         struct {
		Name     string `json:"name"`
		Language struct {
			Code string `json:"code"`
		} `json:"language"`
		Components []waComponent `json:"components"`
	} `json:"template"`
}

// SendTemplate sends a template message with positional body parameters.
func (c *WhatsAppClient) SendTemplate(ctx context.Context, to, templateName string, params []string) error {
	msg := waTemplateMessage{MessagingProduct: "whatsapp", To: to, Type: "template"}
	msg.Template.Name = templateName
	msg.Template.Language.Code = "en"

	textParams := make([]waTextParam, 0, len(params))
	for _, p := range params {
		textParams = append(textParams, waTextParam{Type: "text", Text: p})
	}
	msg.Template.Components = []waComponent{{Type: "body", Parameters: textParams}}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp API error %s: %s", resp.Status, string(raw))
	}
	return nil
}

// TemplateSender is the delivery half of the WhatsApp notifier.
type TemplateSender interface {
	Configured() bool
	SendTemplate(ctx context.Context, to, templateName string, params []string) error
}

// WhatsAppNotifier sends the booking-confirmation template message. Missing
// credentials no-op successfully.
type WhatsAppNotifier struct {
	bookings bookingLoader
	packages packageLoader
	sender   TemplateSender
	loggerf  func(format string, args ...interface{})

	templateName string
	countryCode  string
}

func NewWhatsAppNotifier(bookings bookingLoader, packages packageLoader, sender TemplateSender, templateName, countryCode string, loggerf func(format string, args ...interface{})) *WhatsAppNotifier {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &WhatsAppNotifier{
		bookings:     bookings,
		packages:     packages,
		sender:       sender,
		loggerf:      loggerf,
		templateName: templateName,
		countryCode:  countryCode,
	}
}

func (n *WhatsAppNotifier) Name() string { return "whatsapp" }

func (n *WhatsAppNotifier) NotifyBookingPaid(ctx context.Context, bookingID int64) error {
	if !n.sender.Configured() {
		n.loggerf("level=warn msg=whatsapp credentials missing, skipping booking_id=%d", bookingID)
		return nil
	}

	booking, err := n.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("load booking %d: %w", bookingID, err)
	}

	packageTitle := ""
	if pkg, perr := n.packages.GetByID(ctx, booking.PackageID); perr == nil {
		packageTitle = pkg.Title
	}

	to := NormalizePhone(booking.CustomerPhone, n.countryCode)
	params := []string{booking.CustomerName, packageTitle, FormatTravelDate(booking.TravelDate)}

	if err := n.sender.SendTemplate(ctx, to, n.templateName, params); err != nil {
		return err
	}
	n.loggerf("level=info msg=whatsapp template sent booking_id=%d to=%s", bookingID, to)
	return nil
}
