package lead

import (
	"database/sql"
	"time"
)

// Status tracks a trip inquiry through the sales funnel.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusConverted Status = "converted"
	StatusRejected  Status = "rejected"
	StatusLost      Status = "lost"
)

// TripLead is one inquiry from the website: who is travelling, when, and
// what they asked for. The ops desk works leads until converted or closed.
type TripLead struct {
	ID int64 `db:"id" json:"id"`

	// Traveller contact
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`

	// Trip details
	PackageSlug sql.NullString `db:"package_slug" json:"package_slug,omitempty"`
	TravelDate  sql.NullTime   `db:"travel_date" json:"travel_date,omitempty"`
	PartySize   int            `db:"party_size" json:"party_size"`
	BudgetINR   sql.NullInt64  `db:"budget_inr" json:"budget_inr,omitempty"`
	Message     sql.NullString `db:"message" json:"message,omitempty"`

	// Lead management
	Status     Status         `db:"status" json:"status"`
	Priority   int            `db:"priority" json:"priority"`
	AssignedTo sql.NullString `db:"assigned_to" json:"assigned_to,omitempty"`
	Notes      sql.NullString `db:"notes" json:"notes,omitempty"`

	// Follow-up
	LastContactedAt sql.NullTime `db:"last_contacted_at" json:"last_contacted_at,omitempty"`
	FollowUpCount   int          `db:"follow_up_count" json:"follow_up_count"`

	// Conversion
	ConvertedAt       sql.NullTime  `db:"converted_at" json:"converted_at,omitempty"`
	ConvertedBookingID sql.NullInt64 `db:"converted_booking_id" json:"converted_booking_id,omitempty"`
	RejectionReason   sql.NullString `db:"rejection_reason" json:"rejection_reason,omitempty"`

	// Attribution
	Source      sql.NullString `db:"source" json:"source,omitempty"`
	UTMSource   sql.NullString `db:"utm_source" json:"utm_source,omitempty"`
	UTMMedium   sql.NullString `db:"utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign sql.NullString `db:"utm_campaign" json:"utm_campaign,omitempty"`

	// Metadata
	IPAddress sql.NullString `db:"ip_address" json:"-"`
	UserAgent sql.NullString `db:"user_agent" json:"-"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

func (l *TripLead) IsConverted() bool {
	return l.Status == StatusConverted
}

// IsOpen reports whether the lead is still workable.
func (l *TripLead) IsOpen() bool {
	switch l.Status {
	case StatusConverted, StatusRejected, StatusLost:
		return false
	}
	return true
}
