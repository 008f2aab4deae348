package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) SendOrderConfirmation(ctx context.Context, email, name string, orderID int64, totalCents int64) error {
	subject := fmt.Sprintf("Order #%d confirmed", orderID)
	body := fmt.Sprintf("Hello %s,\n\nThank you for your order. We have received order #%d for a total of %s.\n\nYou will be notified as your rental progresses.\n\nThe RentEasy Team", name, orderID, formatCents(totalCents))
	return s.send(email, name, subject, body)
}

func (s *emailService) SendOrderStatusUpdate(ctx context.Context, email, name string, orderID int64, status domain.OrderStatus) error {
	subject := fmt.Sprintf("Order #%d update", orderID)
	body := fmt.Sprintf("Hello %s,\n\nYour order #%d is now %s.\n\nThe RentEasy Team", name, orderID, status)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendQuotation(ctx context.Context, email, customerName, quotationID string, totalCents int64) error {
	subject := fmt.Sprintf("Quotation %s", quotationID)
	body := fmt.Sprintf("Hello %s,\n\nPlease find your rental quotation %s for a total of %s.\n\nReply to this email to confirm or request changes.\n\nThe RentEasy Team", customerName, quotationID, formatCents(totalCents))
	return s.send(email, customerName, subject, body)
}

func (s *emailService) SendPendingOrderReminder(ctx context.Context, email string, orderID int64, pendingSince time.Time) error {
	subject := fmt.Sprintf("Order #%d is awaiting confirmation", orderID)
	body := fmt.Sprintf("Order #%d has been pending since %s and needs your attention.\n\nThe RentEasy Team", orderID, pendingSince.Format("2006-01-02"))
	return s.send(email, "", subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
