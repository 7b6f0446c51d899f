package lead

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// SubmitLead records a trip inquiry. A repeat submission from the same email
// while an earlier inquiry is still open returns the open lead instead of
// piling up duplicates for the ops desk.
func (s *Service) SubmitLead(ctx context.Context, req *SubmitLeadRequest, ip, userAgent string) (*TripLead, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetOpenByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	partySize := req.PartySize
	if partySize < 1 {
		partySize = 1
	}

	now := time.Now()
	lead := &TripLead{
		Name:        req.Name,
		Email:       email,
		Phone:       req.Phone,
		PackageSlug: nullString(req.PackageSlug),
		PartySize:   partySize,
		BudgetINR:   sql.NullInt64{Int64: req.BudgetINR, Valid: req.BudgetINR > 0},
		Message:     nullString(req.Message),
		Status:      StatusNew,
		Source:      sql.NullString{String: "website", Valid: true},
		UTMSource:   nullString(req.UTMSource),
		UTMMedium:   nullString(req.UTMMedium),
		UTMCampaign: nullString(req.UTMCampaign),
		IPAddress:   nullString(ip),
		UserAgent:   nullString(userAgent),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.TravelDate != nil {
		lead.TravelDate = sql.NullTime{Time: *req.TravelDate, Valid: true}
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*TripLead, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}

func (s *Service) ListLeads(ctx context.Context, status *Status, limit, offset int) ([]*TripLead, int, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, status, limit, offset)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, req *UpdateLeadStatusRequest) error {
	lead, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead.IsConverted() {
		return ErrAlreadyConverted
	}
	return s.repo.UpdateStatus(ctx, id, req.Status, req.Notes, req.Reason)
}

func (s *Service) MarkContacted(ctx context.Context, id int64) error {
	lead, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead.Status == StatusNew {
		if err := s.repo.UpdateStatus(ctx, id, StatusContacted, "", ""); err != nil {
			return err
		}
	}
	return s.repo.MarkContacted(ctx, id)
}

func (s *Service) Assign(ctx context.Context, id int64, req *AssignLeadRequest) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Assign(ctx, id, req.Assignee, req.Priority)
}

// ConvertLead links a lead to the booking that closed it.
func (s *Service) ConvertLead(ctx context.Context, id int64, req *ConvertLeadRequest) error {
	lead, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead.IsConverted() {
		return ErrAlreadyConverted
	}
	if lead.Status == StatusRejected || lead.Status == StatusLost {
		return ErrCannotConvert
	}
	return s.repo.MarkConverted(ctx, id, req.BookingID)
}

func (s *Service) GetStats(ctx context.Context) (map[Status]int, error) {
	return s.repo.CountByStatus(ctx)
}
