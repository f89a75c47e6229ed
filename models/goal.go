package models

import "time"

type Goal struct {
	ID        string     `json:"id" gorm:"primaryKey;size:191"`
	UserID    string     `json:"user_id" gorm:"not null;size:191;index"`
	Metric    string     `json:"metric" gorm:"not null;size:50"` // e.g. distance_km, workouts_per_week
	Target    float64    `json:"target" gorm:"not null"`
	Progress  float64    `json:"progress" gorm:"default:0"`
	Deadline  *time.Time `json:"deadline"`
	Achieved  bool       `json:"achieved" gorm:"default:false"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
