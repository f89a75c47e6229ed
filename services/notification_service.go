// File: /services/notification_service.go
package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"fitcircle-api/models"
)

// Broadcaster pushes a payload to every live socket of one user. The
// websocket hub implements it.
type Broadcaster interface {
	Push(userID string, payload []byte)
}

// EventPublisher fans an event out to other instances. The redis bridge
// implements it.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event *models.Event) error
}

// NotificationService persists engagement/follow events as notifications and
// hands them to the delivery layer. Delivery failures are logged, never
// surfaced to the originating request.
type NotificationService struct {
	db          *gorm.DB
	broadcaster Broadcaster
	publisher   EventPublisher
	logger      zerolog.Logger
}

func NewNotificationService(db *gorm.DB, broadcaster Broadcaster, publisher EventPublisher, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		db:          db,
		broadcaster: broadcaster,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *NotificationService) NotifyFollow(actorID, targetID string) {
	s.emit(models.NotificationTypeFollow, actorID, targetID, nil, nil)
}

func (s *NotificationService) NotifyLike(actorID, targetID, postID string) {
	s.emit(models.NotificationTypeLike, actorID, targetID, &postID, nil)
}

func (s *NotificationService) NotifyComment(actorID, targetID, postID, commentID string) {
	s.emit(models.NotificationTypeComment, actorID, targetID, &postID, &commentID)
}

func (s *NotificationService) emit(kind models.NotificationType, actorID, targetID string, postID, commentID *string) {
	// Nobody is told about their own actions.
	if actorID == targetID {
		return
	}

	notification := models.Notification{
		ID:           uuid.New().String(),
		Type:         kind,
		ActorUserID:  actorID,
		TargetUserID: targetID,
		PostID:       postID,
		CommentID:    commentID,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		s.logger.Error().Err(err).Str("type", string(kind)).Msg("failed to persist notification")
		return
	}

	event := models.Event{
		Type:         kind,
		ActorUserID:  actorID,
		TargetUserID: targetID,
		PostID:       postID,
		CommentID:    commentID,
		Timestamp:    time.Now(),
	}

	// With a publisher configured the event reaches the local hub through the
	// shared channel like any other instance's events; pushing directly too
	// would deliver it twice.
	if s.publisher != nil {
		if err := s.publisher.PublishEvent(context.Background(), &event); err != nil {
			s.logger.Error().Err(err).Msg("failed to publish notification event")
		}
		return
	}

	if s.broadcaster != nil {
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to marshal notification event")
			return
		}
		s.broadcaster.Push(targetID, payload)
	}
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(userID string, page, limit int) (*models.PaginatedNotifications, error) {
	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	var total int64
	if err := s.db.Model(&models.Notification{}).Where("target_user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}

	var notifications []models.Notification
	if err := s.db.Preload("ActorUser").
		Where("target_user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, err
	}

	for i := range notifications {
		notifications[i].Message = notifications[i].GetMessage()
	}

	return &models.PaginatedNotifications{
		Notifications: notifications,
		Page:          page,
		Limit:         limit,
		Total:         total,
		HasMore:       hasMorePages(page, limit, total),
	}, nil
}

func (s *NotificationService) Stats(userID string) (*models.NotificationStats, error) {
	var unread, total int64
	if err := s.db.Model(&models.Notification{}).
		Where("target_user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Notification{}).
		Where("target_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, err
	}
	return &models.NotificationStats{
		UnreadCount: int(unread),
		TotalCount:  int(total),
	}, nil
}

func (s *NotificationService) MarkAsRead(userID, notificationID string) error {
	res := s.db.Model(&models.Notification{}).
		Where("id = ? AND target_user_id = ?", notificationID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(userID string) error {
	return s.db.Model(&models.Notification{}).
		Where("target_user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
