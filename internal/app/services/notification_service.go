package services

import (
	"context"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
)

// NotificationService defines the interface for notification operations
type NotificationService interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkSeen(ctx context.Context, id, userID int64) error
	NotifyGroup(ctx context.Context, groupID int64, scheduleID *int64, message string, notifType models.NotificationType) (int64, error)
}

// notificationServiceImpl implements the NotificationService interface
type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo *repositories.NotificationRepository) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *notificationServiceImpl) ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID)
}

func (s *notificationServiceImpl) MarkSeen(ctx context.Context, id, userID int64) error {
	return s.notificationRepo.MarkSeen(ctx, id, userID)
}

// NotifyGroup delivers one message to every student of a guidance group.
func (s *notificationServiceImpl) NotifyGroup(ctx context.Context, groupID int64, scheduleID *int64, message string, notifType models.NotificationType) (int64, error) {
	return s.notificationRepo.CreateForGroup(ctx, groupID, scheduleID, message, notifType)
}
