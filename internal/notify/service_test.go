package notify

import (
	"context"
	"strings"
	"testing"
)

type fakeContactRepo struct {
	contact *Contact
	err     error
}

func (f *fakeContactRepo) GetUserContact(ctx context.Context, userID int64) (*Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.contact, nil
}

func TestPicksReadySendsOnEnabledChannels(t *testing.T) {
	repo := &fakeContactRepo{contact: &Contact{
		UserID: 1, Email: "ada@example.com", Phone: "+15550001111", DisplayName: "Ada",
	}}
	email := NewMockEmailSender()
	sms := NewMockSMSSender()
	svc := NewService(repo, email, sms, Options{EmailEnabled: true, SMSEnabled: true})

	if err := svc.PicksReady(context.Background(), 1, 10); err != nil {
		t.Fatal(err)
	}

	if len(email.SentEmails) != 1 {
		t.Fatalf("expected 1 email, got %d", len(email.SentEmails))
	}
	if !strings.Contains(email.SentEmails[0].Body, "10 new matches") {
		t.Errorf("email body = %q, want pick count", email.SentEmails[0].Body)
	}
	if len(sms.SentMessages) != 1 {
		t.Fatalf("expected 1 SMS, got %d", len(sms.SentMessages))
	}
}

func TestPicksReadySkipsDisabledChannels(t *testing.T) {
	repo := &fakeContactRepo{contact: &Contact{
		UserID: 1, Email: "ada@example.com", Phone: "+15550001111",
	}}
	email := NewMockEmailSender()
	sms := NewMockSMSSender()
	svc := NewService(repo, email, sms, Options{EmailEnabled: true})

	if err := svc.PicksReady(context.Background(), 1, 3); err != nil {
		t.Fatal(err)
	}

	if len(email.SentEmails) != 1 {
		t.Errorf("expected 1 email, got %d", len(email.SentEmails))
	}
	if len(sms.SentMessages) != 0 {
		t.Errorf("expected no SMS when disabled, got %d", len(sms.SentMessages))
	}
}

func TestPicksReadySkipsMissingAddresses(t *testing.T) {
	repo := &fakeContactRepo{contact: &Contact{UserID: 1}}
	email := NewMockEmailSender()
	sms := NewMockSMSSender()
	svc := NewService(repo, email, sms, Options{EmailEnabled: true, SMSEnabled: true})

	if err := svc.PicksReady(context.Background(), 1, 3); err != nil {
		t.Fatal(err)
	}

	if len(email.SentEmails) != 0 || len(sms.SentMessages) != 0 {
		t.Error("nothing should be sent without delivery addresses")
	}
}

func TestPicksReadyFailsWithoutContact(t *testing.T) {
	repo := &fakeContactRepo{err: ErrContactNotFound}
	svc := NewService(repo, NewMockEmailSender(), NewMockSMSSender(), Options{EmailEnabled: true})

	if err := svc.PicksReady(context.Background(), 99, 3); err == nil {
		t.Error("expected error when contact lookup fails")
	}
}
