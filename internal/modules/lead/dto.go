package lead

import "time"

// SubmitLeadRequest is the public trip-inquiry form payload.
type SubmitLeadRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`

	PackageSlug string     `json:"package_slug"`
	TravelDate  *time.Time `json:"travel_date"`
	PartySize   int        `json:"party_size" binding:"min=0"`
	BudgetINR   int64      `json:"budget_inr"`
	Message     string     `json:"message"`

	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
}

type UpdateLeadStatusRequest struct {
	Status Status `json:"status" binding:"required,oneof=new contacted qualified rejected lost"`
	Notes  string `json:"notes"`
	Reason string `json:"reason"`
}

type AssignLeadRequest struct {
	Assignee string `json:"assignee" binding:"required"`
	Priority int    `json:"priority"`
}

type ConvertLeadRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

type LeadListResponse struct {
	Leads []*TripLead `json:"leads"`
	Total int         `json:"total"`
}
