package wishlist

import (
	"context"
	"fmt"
	"math"
	"time"
)

// AlertSender delivers one price-drop email.
type AlertSender interface {
	Configured() bool
	Send(ctx context.Context, from, to, replyTo, bcc, subject, html string) error
}

// Sweep walks alert-enabled wishlist entries and emails users whose watched
// package now costs less than their target price. The resend window keeps a
// persistent drop from mailing the same user every run.
type Sweep struct {
	items   wishlistStore
	sender  AlertSender
	loggerf func(format string, args ...interface{})

	from    string
	replyTo string
	window  time.Duration
	now     func() time.Time
}

func NewSweep(items wishlistStore, sender AlertSender, from, replyTo string, window time.Duration, loggerf func(format string, args ...interface{})) *Sweep {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Sweep{
		items:   items,
		sender:  sender,
		loggerf: loggerf,
		from:    from,
		replyTo: replyTo,
		window:  window,
		now:     time.Now,
	}
}

type SweepResult struct {
	Scanned int
	Sent    int
	Skipped int
	Failed  int
}

// Run processes candidates sequentially; one recipient's provider error does
// not abort the rest.
func (s *Sweep) Run(ctx context.Context) (SweepResult, error) {
	candidates, err := s.items.ListAlertCandidates(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("list alert candidates: %w", err)
	}

	res := SweepResult{Scanned: len(candidates)}
	now := s.now()

	for _, item := range candidates {
		if item.Package == nil || item.User == nil {
			res.Skipped++
			continue
		}

		target := math.Inf(1)
		if item.TargetPrice != nil {
			target = *item.TargetPrice
		}
		if item.Package.Price >= target {
			res.Skipped++
			continue
		}
		if item.AlertSentAt != nil && now.Sub(*item.AlertSentAt) < s.window {
			res.Skipped++
			continue
		}

		if !s.sender.Configured() {
			s.loggerf("level=warn msg=email API key missing, skipping price alerts")
			res.Skipped += len(candidates) - res.Sent - res.Failed - res.Skipped
			break
		}

		subject := fmt.Sprintf("Price drop: %s", item.Package.Title)
		html := fmt.Sprintf(
			"<p>Hi %s,</p><p><b>%s</b> is now %.2f — below your target of %s.</p><p>Book while the price lasts.</p>",
			item.User.Name, item.Package.Title, item.Package.Price, formatTarget(item.TargetPrice),
		)
		if err := s.sender.Send(ctx, s.from, item.User.Email, s.replyTo, "", subject, html); err != nil {
			s.loggerf("level=error msg=price alert send failed wishlist_id=%d to=%s err=%v", item.ID, item.User.Email, err)
			res.Failed++
			continue
		}

		if err := s.items.StampAlertSent(ctx, item.ID, now); err != nil {
			s.loggerf("level=error msg=failed to stamp alert_sent_at wishlist_id=%d err=%v", item.ID, err)
		}
		res.Sent++
	}

	s.loggerf("level=info msg=price alert sweep done scanned=%d sent=%d skipped=%d failed=%d",
		res.Scanned, res.Sent, res.Skipped, res.Failed)
	return res, nil
}

func formatTarget(target *float64) string {
	if target == nil {
		return "any price"
	}
	return fmt.Sprintf("%.2f", *target)
}
