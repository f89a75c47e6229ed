// File: /models/post.go
package models

import (
	"time"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Valid reports whether v is one of the known visibility values.
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

type Post struct {
	ID         string      `json:"id" gorm:"primaryKey;size:191"`
	AuthorID   string      `json:"author_id" gorm:"not null;size:191;index:idx_posts_author_created"`
	Content    string      `json:"content" gorm:"type:text;not null"`
	WorkoutID  *string     `json:"workout_id" gorm:"size:191"`
	ImageUrls  StringSlice `json:"image_urls" gorm:"type:json"`
	Visibility Visibility  `json:"visibility" gorm:"not null;default:'public';size:10;index"`
	CreatedAt  time.Time   `json:"created_at" gorm:"index:idx_posts_author_created"`
	UpdatedAt  time.Time   `json:"updated_at"`

	Author   User       `json:"author" gorm:"foreignKey:AuthorID"`
	Likes    []PostLike `json:"-" gorm:"foreignKey:PostID"`
	Comments []Comment  `json:"comments,omitempty" gorm:"foreignKey:PostID"`

	// Derived engagement values, computed from the like/comment rows at read
	// time and never persisted.
	LikeCount     int64 `json:"like_count" gorm:"-"`
	CommentCount  int64 `json:"comment_count" gorm:"-"`
	LikedByViewer bool  `json:"liked_by_viewer" gorm:"-"`
}

type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"not null;size:191;uniqueIndex:idx_post_likes_post_user"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:idx_post_likes_post_user"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeResult is returned by the like toggle: the state after the flip plus the
// recomputed count.
type LikeResult struct {
	PostID    string `json:"post_id"`
	Liked     bool   `json:"liked"`
	LikeCount int64  `json:"like_count"`
}

// FeedResponse represents a feed page with pagination metadata
type FeedResponse struct {
	Posts      []Post `json:"posts"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int64  `json:"total"`
	HasMore    bool   `json:"has_more"`
	TotalPages int    `json:"total_pages"`
}
