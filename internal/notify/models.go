// internal/notify/models.go
// Outbound notification channel interfaces and message types

package notify

import (
	"context"
)

// EmailMessage is a single outbound email
type EmailMessage struct {
	To      string
	Subject string
	Body    string
	HTML    string
}

// SMSMessage is a single outbound text message
type SMSMessage struct {
	To   string
	Body string
}

// EmailSender delivers email notifications
type EmailSender interface {
	SendEmail(ctx context.Context, msg *EmailMessage) error
}

// SMSSender delivers SMS notifications
type SMSSender interface {
	SendSMS(ctx context.Context, msg *SMSMessage) error
}

// Contact holds the delivery addresses for one user
type Contact struct {
	UserID      int64  `db:"user_id"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	DisplayName string `db:"display_name"`
}
