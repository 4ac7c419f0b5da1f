package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"janseva/models"
	"janseva/repository"
)

// Notifier is the dispatch port the lifecycle engine publishes transition
// events through. Implementations must never read or mutate complaints.
type Notifier interface {
	Send(role models.RecipientRole, message string, severity models.Severity, relatedComplaintID string) error
}

// NotificationService owns the role-addressed notification log
type NotificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a new notification dispatcher
func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Send appends a fresh unread notification to the head of the log
func (s *NotificationService) Send(
	role models.RecipientRole,
	message string,
	severity models.Severity,
	relatedComplaintID string,
) error {
	if severity == "" {
		severity = models.SeverityInfo
	}
	notification := &models.Notification{
		NotificationID:     uuid.New().String(),
		RecipientRole:      role,
		Message:            message,
		Severity:           severity,
		RelatedComplaintID: relatedComplaintID,
		Timestamp:          time.Now().UTC(),
		Read:               false,
	}
	if err := s.repo.Insert(notification); err != nil {
		return fmt.Errorf("failed to dispatch notification: %w", err)
	}
	return nil
}

// MarkRead flips the read flag of one notification. Unknown ids are a
// silent no-op, deliberately permissive.
func (s *NotificationService) MarkRead(notificationID string) error {
	return s.repo.MarkRead(notificationID)
}

// List returns notifications most-recent-first, optionally filtered by
// recipient role (empty role returns the full log).
func (s *NotificationService) List(role models.RecipientRole) ([]models.Notification, error) {
	notifications, err := s.repo.List(role)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}
