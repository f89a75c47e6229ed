package models

import (
	"time"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	PostID    string    `json:"post_id" gorm:"not null;size:191;index"`
	AuthorID  string    `json:"author_id" gorm:"not null;size:191;index"`
	Body      string    `json:"body" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
}
