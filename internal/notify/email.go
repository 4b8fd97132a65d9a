// internal/notify/email.go
// SendGrid and mock email delivery

package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridEmailSender delivers email through the SendGrid API
type SendGridEmailSender struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

// NewSendGridEmailSender creates a SendGrid-backed email sender
func NewSendGridEmailSender(apiKey, from, fromName string) (*SendGridEmailSender, error) {
	if apiKey == "" || from == "" {
		return nil, fmt.Errorf("incomplete SendGrid configuration")
	}
	return &SendGridEmailSender{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
	}, nil
}

func (s *SendGridEmailSender) SendEmail(ctx context.Context, msg *EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail("", msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.HTML)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("Failed to send email to %s: %v", msg.To, err)
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	log.Printf("Successfully sent email to %s", msg.To)
	return nil
}

// MockEmailSender records emails instead of delivering them
type MockEmailSender struct {
	SentEmails []*EmailMessage
}

func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{SentEmails: make([]*EmailMessage, 0)}
}

func (m *MockEmailSender) SendEmail(ctx context.Context, msg *EmailMessage) error {
	m.SentEmails = append(m.SentEmails, msg)
	log.Printf("Mock: Sending email to %s: %s", msg.To, msg.Subject)
	return nil
}
