// File: /models/notification.go
package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeFollow  NotificationType = "follow"
	NotificationTypeLike    NotificationType = "like"
	NotificationTypeComment NotificationType = "comment"
)

type Notification struct {
	ID           string           `json:"id" gorm:"primaryKey;size:191"`
	Type         NotificationType `json:"type" gorm:"not null;size:50"`
	ActorUserID  string           `json:"actor_user_id" gorm:"not null;size:191"`  // Who performed the action
	TargetUserID string           `json:"target_user_id" gorm:"not null;size:191;index:idx_notifications_target_created"` // Who receives the notification
	PostID       *string          `json:"post_id" gorm:"size:191"`                 // Optional: related post
	CommentID    *string          `json:"comment_id" gorm:"size:191"`              // Optional: related comment
	IsRead       bool             `json:"is_read" gorm:"default:false"`
	CreatedAt    time.Time        `json:"created_at" gorm:"index:idx_notifications_target_created"`
	UpdatedAt    time.Time        `json:"updated_at"`

	// Message is rendered from Type at read time, never persisted.
	Message string `json:"message" gorm:"-"`

	ActorUser User `json:"actor_user" gorm:"foreignKey:ActorUserID"`
}

// Event is the wire shape pushed to websocket subscribers and published on the
// cross-instance channel. It mirrors the persisted notification minus read
// state.
type Event struct {
	Type         NotificationType `json:"type"`
	ActorUserID  string           `json:"actor_user_id"`
	TargetUserID string           `json:"target_user_id"`
	PostID       *string          `json:"post_id,omitempty"`
	CommentID    *string          `json:"comment_id,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
}

// GetMessage returns a human-readable message for the notification
func (n *Notification) GetMessage() string {
	switch n.Type {
	case NotificationTypeFollow:
		return "started following you"
	case NotificationTypeLike:
		return "liked your post"
	case NotificationTypeComment:
		return "commented on your post"
	default:
		return "interacted with your content"
	}
}

// NotificationStats represents notification statistics
type NotificationStats struct {
	UnreadCount int `json:"unread_count"`
	TotalCount  int `json:"total_count"`
}

// PaginatedNotifications represents paginated notification response
type PaginatedNotifications struct {
	Notifications []Notification `json:"notifications"`
	Page          int            `json:"page"`
	Limit         int            `json:"limit"`
	Total         int64          `json:"total"`
	HasMore       bool           `json:"has_more"`
}
