package lead

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, lead *TripLead) error {
	query := `
		INSERT INTO trip_leads (
			name, email, phone,
			package_slug, travel_date, party_size, budget_inr, message,
			status, priority, notes,
			source, utm_source, utm_medium, utm_campaign,
			ip_address, user_agent,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		) RETURNING id, created_at, updated_at
	`

	return r.db.QueryRowContext(
		ctx, query,
		lead.Name, lead.Email, lead.Phone,
		lead.PackageSlug, lead.TravelDate, lead.PartySize, lead.BudgetINR, lead.Message,
		lead.Status, lead.Priority, lead.Notes,
		lead.Source, lead.UTMSource, lead.UTMMedium, lead.UTMCampaign,
		lead.IPAddress, lead.UserAgent,
		lead.CreatedAt, lead.UpdatedAt,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*TripLead, error) {
	var lead TripLead
	err := r.db.GetContext(ctx, &lead, `SELECT * FROM trip_leads WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &lead, err
}

// GetOpenByEmail returns the newest still-workable lead for an email, or nil.
func (r *Repository) GetOpenByEmail(ctx context.Context, email string) (*TripLead, error) {
	var lead TripLead
	query := `
		SELECT * FROM trip_leads
		WHERE email = $1 AND status NOT IN ('converted', 'rejected', 'lost')
		ORDER BY created_at DESC LIMIT 1
	`
	err := r.db.GetContext(ctx, &lead, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &lead, err
}

func (r *Repository) List(ctx context.Context, status *Status, limit, offset int) ([]*TripLead, int, error) {
	var leads []*TripLead
	var total int

	if status != nil {
		if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM trip_leads WHERE status = $1`, *status); err != nil {
			return nil, 0, err
		}
		err := r.db.SelectContext(ctx, &leads,
			`SELECT * FROM trip_leads WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
			*status, limit, offset)
		return leads, total, err
	}

	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM trip_leads`); err != nil {
		return nil, 0, err
	}
	err := r.db.SelectContext(ctx, &leads,
		`SELECT * FROM trip_leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	return leads, total, err
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status, notes, reason string) error {
	query := `
		UPDATE trip_leads
		SET status = $2, notes = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, status, nullString(notes), nullString(reason))
	return err
}

func (r *Repository) MarkContacted(ctx context.Context, id int64) error {
	query := `
		UPDATE trip_leads
		SET last_contacted_at = NOW(),
		    follow_up_count = follow_up_count + 1,
		    updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *Repository) Assign(ctx context.Context, id int64, assignee string, priority int) error {
	query := `
		UPDATE trip_leads
		SET assigned_to = $2, priority = $3, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, assignee, priority)
	return err
}

func (r *Repository) MarkConverted(ctx context.Context, leadID, bookingID int64) error {
	query := `
		UPDATE trip_leads
		SET status = $2, converted_at = NOW(), converted_booking_id = $3, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, leadID, StatusConverted, bookingID)
	return err
}

func (r *Repository) CountByStatus(ctx context.Context) (map[Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM trip_leads GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Status]int)
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
