package track

import "strings"

const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
)

// DeviceType guesses the device class from viewport width and user-agent
// substrings. Width wins when present; the UA match is the fallback for
// clients that do not report a viewport.
func DeviceType(userAgent string, viewportWidth int) string {
	if viewportWidth > 0 {
		switch {
		case viewportWidth < 768:
			return DeviceMobile
		case viewportWidth < 1024:
			return DeviceTablet
		default:
			return DeviceDesktop
		}
	}

	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return DeviceTablet
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "android"):
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}
