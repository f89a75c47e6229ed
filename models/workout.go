// File: /models/workout.go
package models

import "time"

type ActivityType string

const (
	ActivityRun      ActivityType = "run"
	ActivityRide     ActivityType = "ride"
	ActivitySwim     ActivityType = "swim"
	ActivityStrength ActivityType = "strength"
	ActivityOther    ActivityType = "other"
)

// Valid reports whether a is one of the known activity values.
func (a ActivityType) Valid() bool {
	switch a {
	case ActivityRun, ActivityRide, ActivitySwim, ActivityStrength, ActivityOther:
		return true
	}
	return false
}

type Workout struct {
	ID          string       `json:"id" gorm:"primaryKey;size:191"`
	UserID      string       `json:"user_id" gorm:"not null;size:191;index:idx_workouts_user_performed"`
	Title       string       `json:"title" gorm:"not null;size:255"`
	Activity    ActivityType `json:"activity" gorm:"not null;size:20;default:'other'"`
	DurationSec int          `json:"duration_sec" gorm:"default:0"`
	DistanceKm  float64      `json:"distance_km" gorm:"default:0"`
	Calories    int          `json:"calories" gorm:"default:0"`
	Notes       string       `json:"notes" gorm:"type:text"`
	PerformedAt time.Time    `json:"performed_at" gorm:"index:idx_workouts_user_performed"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	Exercises []Exercise `json:"exercises,omitempty" gorm:"foreignKey:WorkoutID"`
}

// Exercise is a single entry inside a workout (sets/reps/weight for strength
// work, or just a named segment for cardio).
type Exercise struct {
	ID        string  `json:"id" gorm:"primaryKey;size:191"`
	WorkoutID string  `json:"workout_id" gorm:"not null;size:191;index"`
	Name      string  `json:"name" gorm:"not null;size:255"`
	Sets      int     `json:"sets" gorm:"default:0"`
	Reps      int     `json:"reps" gorm:"default:0"`
	WeightKg  float64 `json:"weight_kg" gorm:"default:0"`
	Position  int     `json:"position" gorm:"default:0"`
}
