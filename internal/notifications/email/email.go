package email

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/internal/events"
)

// Mailer is the delivery transport. The SMTP implementation lives outside
// this repo; LogMailer stands in everywhere else.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logrus.Infof("Sending email to=%s subject=%q", to, subject)
	return nil
}

type EmailService struct {
	Mailer Mailer
}

func NewEmailService(m Mailer) *EmailService {
	return &EmailService{Mailer: m}
}

func (s *EmailService) SendSignupEmail(ctx context.Context, user events.UserRegisteredEvent) error {
	logrus.Infof("Sending signup email to user: %s", user.Email)
	return s.Mailer.Send(ctx, user.Email,
		"Welcome to Mint!",
		fmt.Sprintf("Hello %s %s, welcome 🎉", user.FirstName, user.LastName))
}

func (s *EmailService) SendTransactionEmail(ctx context.Context, event events.TransactionCreatedEvent, completed bool) error {
	subject := fmt.Sprintf("Transaction %s completed", event.TransactionID)
	body := fmt.Sprintf("Your %s of %d has been settled.", event.Type, event.Amount)
	if !completed {
		subject = fmt.Sprintf("Transaction %s failed", event.TransactionID)
		body = fmt.Sprintf("Your %s of %d could not be settled: %s", event.Type, event.Amount, event.Reason)
	}

	// Recipient resolution needs the user service; until that lands the
	// transactional emails are delivered to the audit log only.
	return s.Mailer.Send(ctx, "", subject, body)
}
