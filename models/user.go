// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	Name          string    `json:"name" gorm:"not null;size:255"`
	Username      string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password      string    `json:"-" gorm:"not null;size:255"`
	Avatar        *string   `json:"avatar" gorm:"size:500"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Workouts []Workout `json:"workouts,omitempty" gorm:"foreignKey:UserID"`
	Goals    []Goal    `json:"goals,omitempty" gorm:"foreignKey:UserID"`
}

// UserRef is the minimal identity view handed out by the directory and
// embedded in post/follow responses.
type UserRef struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Avatar   *string `json:"avatar"`
}

// Ref strips the user down to its public reference.
func (u *User) Ref() UserRef {
	return UserRef{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
	}
}

type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID string    `json:"follower_id" gorm:"not null;size:191;uniqueIndex:idx_follows_pair;index:idx_follows_follower_created"`
	FolloweeID string    `json:"followee_id" gorm:"not null;size:191;uniqueIndex:idx_follows_pair;index:idx_follows_followee_created"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_follows_follower_created;index:idx_follows_followee_created"`

	Follower User `json:"follower,omitempty" gorm:"foreignKey:FollowerID"`
	Followee User `json:"followee,omitempty" gorm:"foreignKey:FolloweeID"`
}

// FollowPage is a paginated slice of user references from either side of the
// follow graph.
type FollowPage struct {
	Users   []UserRef `json:"users"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	Total   int64     `json:"total"`
	HasMore bool      `json:"has_more"`
}
