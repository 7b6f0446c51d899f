package lead

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS trip_leads (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	package_slug TEXT,
	travel_date TIMESTAMPTZ,
	party_size INT NOT NULL DEFAULT 1,
	budget_inr BIGINT,
	message TEXT,
	status TEXT NOT NULL DEFAULT 'new',
	priority INT NOT NULL DEFAULT 0,
	assigned_to TEXT,
	notes TEXT,
	last_contacted_at TIMESTAMPTZ,
	follow_up_count INT NOT NULL DEFAULT 0,
	converted_at TIMESTAMPTZ,
	converted_booking_id BIGINT,
	rejection_reason TEXT,
	source TEXT,
	utm_source TEXT,
	utm_medium TEXT,
	utm_campaign TEXT,
	ip_address TEXT,
	user_agent TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_trip_leads_email ON trip_leads (email);
CREATE INDEX IF NOT EXISTS idx_trip_leads_status ON trip_leads (status);
`

// EnsureSchema creates the leads table when migrations have not run yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
