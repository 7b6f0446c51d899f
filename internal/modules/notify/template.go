package notify

import (
	"fmt"
	"strings"
	"time"

	"staykedarnath/internal/domain"
)

// RenderTokens substitutes every {{token}} occurrence in s. Unknown tokens
// are left as-is so a typo in a template is visible instead of silent.
func RenderTokens(s string, fields map[string]string) string {
	for token, value := range fields {
		s = strings.ReplaceAll(s, "{{"+token+"}}", value)
	}
	return s
}

// BookingFields builds the substitution map the booking templates use.
func BookingFields(b *domain.Booking, packageTitle string) map[string]string {
	return map[string]string{
		"customer_name": b.CustomerName,
		"amount":        fmt.Sprintf("%.2f", b.Amount),
		"package_name":  packageTitle,
		"booking_id":    ShortBookingID(b.ID),
		"travel_date":   FormatTravelDate(b.TravelDate),
	}
}

func ShortBookingID(id int64) string {
	return fmt.Sprintf("SK-%06d", id)
}

func FormatTravelDate(t *time.Time) string {
	if t == nil {
		return "to be confirmed"
	}
	return t.Format("2 Jan 2006")
}
