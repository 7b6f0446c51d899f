package payment

import "errors"

var (
	ErrNotConfigured    = errors.New("payment provider keys are not configured")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrMissingField     = errors.New("order id, payment id and signature are required")
	ErrBookingNotFound  = errors.New("no booking matches the provider order id")
)
