package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"borrowbuddy-backend/internal/ledger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendPendingReminder(ctx context.Context, toEmail, toName string, balances ledger.Balances, pendingCount int) error {
	if toName == "" {
		toName = toEmail
	}

	subject := "Borrow Buddy: you have open loans"
	body := fmt.Sprintf(`Hello %s,

You have %d open transaction(s) in Borrow Buddy.

Owed to you: %s
You owe: %s

Open the app to review or settle them.

Best regards,
The Borrow Buddy Team`, toName, pendingCount, ledger.FormatCents(balances.OwedToMeCents), ledger.FormatCents(balances.IOweCents))

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
