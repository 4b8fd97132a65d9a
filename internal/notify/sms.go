// internal/notify/sms.go
// Twilio and mock SMS delivery

package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSMSSender delivers SMS through the Twilio API
type TwilioSMSSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSMSSender creates a Twilio-backed SMS sender
func NewTwilioSMSSender(accountSID, authToken, from string) (*TwilioSMSSender, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("incomplete Twilio configuration")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSMSSender{client: client, from: from}, nil
}

func (s *TwilioSMSSender) SendSMS(ctx context.Context, msg *SMSMessage) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(s.from)
	params.SetBody(msg.Body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send SMS to %s: %v", msg.To, err)
		return err
	}

	if resp.Sid != nil {
		log.Printf("Successfully sent SMS to %s with SID: %s", msg.To, *resp.Sid)
	}
	return nil
}

// MockSMSSender records messages instead of delivering them
type MockSMSSender struct {
	SentMessages []*SMSMessage
}

func NewMockSMSSender() *MockSMSSender {
	return &MockSMSSender{SentMessages: make([]*SMSMessage, 0)}
}

func (m *MockSMSSender) SendSMS(ctx context.Context, msg *SMSMessage) error {
	m.SentMessages = append(m.SentMessages, msg)
	log.Printf("Mock: Sending SMS to %s", msg.To)
	return nil
}
