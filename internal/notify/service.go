// internal/notify/service.go
// Delivers daily-pick notifications over the configured channels.
// Implements the match package's PickNotifier.

package notify

import (
	"context"
	"fmt"
	"log"
)

// Options selects which channels are active
type Options struct {
	EmailEnabled bool
	SMSEnabled   bool
}

// Service sends user-facing notifications
type Service interface {
	PicksReady(ctx context.Context, userID int64, count int) error
}

type service struct {
	repo  Repository
	email EmailSender
	sms   SMSSender
	opts  Options
}

// NewService creates the notification service. Either sender may be nil
// when its channel is disabled.
func NewService(repo Repository, email EmailSender, sms SMSSender, opts Options) Service {
	return &service{repo: repo, email: email, sms: sms, opts: opts}
}

// PicksReady tells a user their daily picks are waiting. Channel failures
// are logged, not returned: a missed notification must never fail the
// pick-generation run.
func (s *service) PicksReady(ctx context.Context, userID int64, count int) error {
	contact, err := s.repo.GetUserContact(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve contact for user %d: %w", userID, err)
	}

	if s.opts.EmailEnabled && s.email != nil && contact.Email != "" {
		msg := &EmailMessage{
			To:      contact.Email,
			Subject: "Your daily picks are ready",
			Body:    fmt.Sprintf("Hi %s, we found %d new matches for you today.", contact.DisplayName, count),
			HTML:    fmt.Sprintf("<p>Hi %s,</p><p>We found <strong>%d</strong> new matches for you today. Open the app to meet them.</p>", contact.DisplayName, count),
		}
		if err := s.email.SendEmail(ctx, msg); err != nil {
			log.Printf("notify: email to user %d failed: %v", userID, err)
		}
	}

	if s.opts.SMSEnabled && s.sms != nil && contact.Phone != "" {
		msg := &SMSMessage{
			To:   contact.Phone,
			Body: fmt.Sprintf("HeartLink: %d new matches are waiting for you today.", count),
		}
		if err := s.sms.SendSMS(ctx, msg); err != nil {
			log.Printf("notify: SMS to user %d failed: %v", userID, err)
		}
	}

	return nil
}
