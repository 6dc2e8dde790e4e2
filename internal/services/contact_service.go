package services

import (
	"context"
	"log/slog"

	"github.com/durangezer/portfolio-api/internal/models"
)

// ContactRepositoryInterface defines the persistence operations the
// contact service needs
type ContactRepositoryInterface interface {
	Create(ctx context.Context, contact *models.Contact) error
	ListUnread(ctx context.Context, limit int) ([]models.Contact, error)
}

// ContactService handles contact form submissions
type ContactService struct {
	repo   ContactRepositoryInterface
	email  EmailService
	logger *slog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(repo ContactRepositoryInterface, email EmailService, logger *slog.Logger) *ContactService {
	return &ContactService{
		repo:   repo,
		email:  email,
		logger: logger,
	}
}

// Submit persists the submission and sends a notification email. A failed
// notification is logged but never fails the submission.
func (s *ContactService) Submit(ctx context.Context, contact *models.Contact) error {
	if err := s.repo.Create(ctx, contact); err != nil {
		s.logger.Error("failed to store contact submission", slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := s.email.SendContactNotification(ctx, contact); err != nil {
		s.logger.Error("failed to send contact notification", slog.Any("error", err))
	}

	s.logger.Info("contact submission stored", slog.Int64("contact_id", contact.ID))
	return nil
}

// ListUnread returns unread submissions for the admin panel, newest first
func (s *ContactService) ListUnread(ctx context.Context, limit int) ([]models.Contact, error) {
	contacts, err := s.repo.ListUnread(ctx, limit)
	if err != nil {
		s.logger.Error("failed to list contact submissions", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return contacts, nil
}
