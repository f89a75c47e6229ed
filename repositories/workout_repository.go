package repositories

import (
	"gorm.io/gorm"

	"fitcircle-api/models"
)

type WorkoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Create(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

func (r *WorkoutRepository) GetByID(id string) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&workout, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// Exists is the post store's workout-reference check.
func (r *WorkoutRepository) Exists(id string) (bool, error) {
	var cnt int64
	if err := r.db.Model(&models.Workout{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *WorkoutRepository) ListByUser(userID string, offset, limit int) ([]models.Workout, int64, error) {
	var total int64
	if err := r.db.Model(&models.Workout{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var workouts []models.Workout
	err := r.db.Where("user_id = ?", userID).
		Order("performed_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&workouts).Error
	return workouts, total, err
}

func (r *WorkoutRepository) Update(workoutID string, updates map[string]interface{}) error {
	return r.db.Model(&models.Workout{}).Where("id = ?", workoutID).Updates(updates).Error
}

func (r *WorkoutRepository) Delete(workoutID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", workoutID).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Workout{}, "id = ?", workoutID).Error
	})
}

func (r *WorkoutRepository) ReplaceExercises(workoutID string, exercises []models.Exercise) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", workoutID).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		if len(exercises) == 0 {
			return nil
		}
		return tx.Create(&exercises).Error
	})
}
