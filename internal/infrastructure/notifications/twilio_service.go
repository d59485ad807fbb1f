package notifications

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/you/tradeops/domain"
)

// TwilioServiceImpl implements domain.NotificationService. Reset codes go
// out as SMS when Twilio is configured; email delivery is a logged mock.
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioService creates a new Twilio notification service
func NewTwilioService(accountSID, authToken, fromNumber string) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
	}
}

// SendSMS implements domain.NotificationService
func (t *TwilioServiceImpl) SendSMS(to, message string) error {
	// Without a configured sender, log instead of sending.
	if t.fromNumber == "" {
		log.Printf("[MOCK SMS] To: %s, Message: %s", to, message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}

// SendEmail implements domain.NotificationService
func (t *TwilioServiceImpl) SendEmail(to, subject, body string) error {
	// Email not implemented with Twilio
	log.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s", to, subject, body)
	return nil
}
