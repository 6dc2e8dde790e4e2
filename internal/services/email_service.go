package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/durangezer/portfolio-api/internal/models"
)

// EmailService defines the interface for sending notification emails
type EmailService interface {
	SendContactNotification(ctx context.Context, contact *models.Contact) error
}

// AWSSESEmailService sends emails using AWS SES
type AWSSESEmailService struct {
	sesClient      *ses.Client
	fromAddress    string
	contactAddress string
	logger         *slog.Logger
}

// NewAWSSESEmailService creates a new AWS SES email service. An empty
// from/contact address disables sending (Send becomes a logged no-op).
func NewAWSSESEmailService(region, fromAddress, contactAddress string, logger *slog.Logger) (*AWSSESEmailService, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSSESEmailService{
		sesClient:      ses.NewFromConfig(cfg),
		fromAddress:    fromAddress,
		contactAddress: contactAddress,
		logger:         logger,
	}, nil
}

// SendContactNotification notifies the site owner of a new contact
// submission
func (s *AWSSESEmailService) SendContactNotification(ctx context.Context, contact *models.Contact) error {
	if s.fromAddress == "" || s.contactAddress == "" {
		s.logger.Info("email service not configured, skipping contact notification")
		return nil
	}

	subject := "[Portfolio] Yeni Mesaj"
	if contact.Subject != nil && *contact.Subject != "" {
		subject = fmt.Sprintf("[Portfolio] Yeni Mesaj: %s", *contact.Subject)
	}

	htmlBody := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2>Yeni İletişim Formu Mesajı</h2>
    <p><strong>Gönderen:</strong> %s</p>
    <p><strong>E-posta:</strong> <a href="mailto:%s">%s</a></p>
    <p><strong>Konu:</strong> %s</p>
    <h3>Mesaj:</h3>
    <p style="white-space: pre-wrap;">%s</p>
    <p style="color: #666; font-size: 12px;">
        Bu e-posta portfolio sitesindeki iletişim formundan otomatik olarak gönderilmiştir.
    </p>
</div>
`, contact.Name, contact.Email, contact.Email, derefOr(contact.Subject, "Belirtilmemiş"), contact.Message)

	textBody := fmt.Sprintf(`Yeni İletişim Formu Mesajı

Gönderen: %s
E-posta: %s
Konu: %s

%s
`, contact.Name, contact.Email, derefOr(contact.Subject, "Belirtilmemiş"), contact.Message)

	input := &ses.SendEmailInput{
		Source: aws.String(s.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.contactAddress},
		},
		ReplyToAddresses: []string{contact.Email},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(htmlBody),
				},
				Text: &types.Content{
					Data: aws.String(textBody),
				},
			},
		},
	}

	if _, err := s.sesClient.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	s.logger.Info("contact notification sent")
	return nil
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
