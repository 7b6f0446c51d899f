package notify

import (
	"context"

	"staykedarnath/internal/domain"
)

type bookingLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type packageLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.TripPackage, error)
}

type templateSource interface {
	GetActiveByTag(ctx context.Context, tag string) (*domain.MessageTemplate, error)
}
