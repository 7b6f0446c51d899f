package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultJWTTTL           = "24h"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultCurrency         = "INR"
	defaultPhoneCountryCode = "91"
	defaultAlertWindow      = "168h"
	defaultDwell            = "1s"
	defaultVisibleRatio     = "0.5"
	defaultTrackQueueSize   = "256"
	defaultEmailFrom        = "StayKedarnath <bookings@staykedarnath.com>"
	defaultEmailReplyTo     = "support@staykedarnath.com"
	defaultEmailBCC         = "ops@staykedarnath.com"
	defaultWATemplate       = "booking_confirmation"
)

// Config carries every env-driven setting. Optional integrations (email,
// WhatsApp, news) degrade to no-ops when their keys are empty; the Razorpay
// keys are checked per request at order-creation time.
type Config struct {
	AppEnv      string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string

	ResendAPIKey string
	EmailFrom    string
	EmailReplyTo string
	EmailBCC     string

	WhatsAppToken        string
	WhatsAppPhoneID      string
	WhatsAppTemplateName string
	PhoneCountryCode     string

	NewsAPIKey string

	PriceAlertWindow time.Duration

	ImpressionDwell time.Duration
	VisibleRatio    float64
	TrackQueueSize  int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	cfg.RazorpayKeyID = strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID"))
	cfg.RazorpayKeySecret = strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET"))
	cfg.Currency = getEnv("PAYMENT_CURRENCY", defaultCurrency)

	cfg.ResendAPIKey = strings.TrimSpace(os.Getenv("RESEND_API_KEY"))
	cfg.EmailFrom = getEnv("EMAIL_FROM", defaultEmailFrom)
	cfg.EmailReplyTo = getEnv("EMAIL_REPLY_TO", defaultEmailReplyTo)
	cfg.EmailBCC = getEnv("EMAIL_BCC", defaultEmailBCC)

	cfg.WhatsAppToken = strings.TrimSpace(os.Getenv("WHATSAPP_ACCESS_TOKEN"))
	cfg.WhatsAppPhoneID = strings.TrimSpace(os.Getenv("WHATSAPP_PHONE_NUMBER_ID"))
	cfg.WhatsAppTemplateName = getEnv("WHATSAPP_TEMPLATE_NAME", defaultWATemplate)
	cfg.PhoneCountryCode = getEnv("PHONE_COUNTRY_CODE", defaultPhoneCountryCode)

	cfg.NewsAPIKey = strings.TrimSpace(os.Getenv("NEWS_API_KEY"))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.PriceAlertWindow, err = parseDurationEnv("PRICE_ALERT_WINDOW", defaultAlertWindow)
	if err != nil {
		return nil, err
	}
	cfg.ImpressionDwell, err = parseDurationEnv("IMPRESSION_DWELL", defaultDwell)
	if err != nil {
		return nil, err
	}

	ratio := strings.TrimSpace(getEnv("IMPRESSION_VISIBLE_RATIO", defaultVisibleRatio))
	cfg.VisibleRatio, err = strconv.ParseFloat(ratio, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid IMPRESSION_VISIBLE_RATIO value %q: %w", ratio, err)
	}

	qsize := strings.TrimSpace(getEnv("TRACK_QUEUE_SIZE", defaultTrackQueueSize))
	cfg.TrackQueueSize, err = strconv.Atoi(qsize)
	if err != nil {
		return nil, fmt.Errorf("invalid TRACK_QUEUE_SIZE value %q: %w", qsize, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.PriceAlertWindow <= 0 {
		return fmt.Errorf("PRICE_ALERT_WINDOW must be > 0")
	}
	if cfg.ImpressionDwell <= 0 {
		return fmt.Errorf("IMPRESSION_DWELL must be > 0")
	}
	if cfg.VisibleRatio <= 0 || cfg.VisibleRatio > 1 {
		return fmt.Errorf("IMPRESSION_VISIBLE_RATIO must be in (0,1]")
	}
	if cfg.TrackQueueSize <= 0 {
		return fmt.Errorf("TRACK_QUEUE_SIZE must be > 0")
	}

	if IsProdLike(cfg.AppEnv) {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("in prod DATABASE_URL must be set")
		}
		if strings.TrimSpace(cfg.JWTSecret) == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod JWT_SECRET must be set and not default")
		}
	}
	return nil
}

// PaymentConfigured reports whether both Razorpay keys are present. The
// payment module treats their absence as a per-request fatal error rather
// than refusing to boot.
func (c *Config) PaymentConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
