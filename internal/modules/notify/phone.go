package notify

import "strings"

// NormalizePhone strips non-digits and prefixes the country code when the
// result is exactly 10 digits. Anything else passes through unchanged —
// international formats are a known limitation, not an error.
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 10 {
		return countryCode + digits
	}
	return digits
}
