// File: /controllers/workout_controller.go
package controllers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitcircle-api/models"
	"fitcircle-api/repositories"
	"fitcircle-api/utils"
)

type WorkoutController struct {
	workoutRepo *repositories.WorkoutRepository
}

func NewWorkoutController(workoutRepo *repositories.WorkoutRepository) *WorkoutController {
	return &WorkoutController{workoutRepo: workoutRepo}
}

type ExerciseRequest struct {
	Name     string  `json:"name" binding:"required"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weight_kg"`
}

type CreateWorkoutRequest struct {
	Title       string            `json:"title" binding:"required"`
	Activity    string            `json:"activity"`
	DurationSec int               `json:"duration_sec"`
	DistanceKm  float64           `json:"distance_km"`
	Calories    int               `json:"calories"`
	Notes       string            `json:"notes"`
	PerformedAt *time.Time        `json:"performed_at"`
	Exercises   []ExerciseRequest `json:"exercises"`
}

func (wc *WorkoutController) GetWorkouts(c *gin.Context) {
	userID := c.GetString("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	workouts, total, err := wc.workoutRepo.ListByUser(userID, (page-1)*limit, limit)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to fetch workouts")
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	c.JSON(http.StatusOK, gin.H{
		"workouts": workouts,
		"page":     page,
		"limit":    limit,
		"total":    total,
		"has_more": page < totalPages,
	})
}

func (wc *WorkoutController) CreateWorkout(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity := models.ActivityType(req.Activity)
	if activity == "" {
		activity = models.ActivityOther
	}
	if !activity.Valid() {
		utils.SendError(c, http.StatusBadRequest, "validation_error", "Unknown activity type")
		return
	}

	performedAt := time.Now()
	if req.PerformedAt != nil {
		performedAt = *req.PerformedAt
	}

	workout := models.Workout{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Activity:    activity,
		DurationSec: req.DurationSec,
		DistanceKm:  req.DistanceKm,
		Calories:    req.Calories,
		Notes:       req.Notes,
		PerformedAt: performedAt,
	}
	for i, ex := range req.Exercises {
		workout.Exercises = append(workout.Exercises, models.Exercise{
			ID:        uuid.New().String(),
			WorkoutID: workout.ID,
			Name:      ex.Name,
			Sets:      ex.Sets,
			Reps:      ex.Reps,
			WeightKg:  ex.WeightKg,
			Position:  i,
		})
	}

	if err := wc.workoutRepo.Create(&workout); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to create workout")
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (wc *WorkoutController) GetWorkout(c *gin.Context) {
	userID := c.GetString("user_id")

	workout, err := wc.workoutRepo.GetByID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "not_found", "Workout not found")
		return
	}
	// Workouts are private to their owner; posts expose them indirectly.
	if workout.UserID != userID {
		utils.SendError(c, http.StatusNotFound, "not_found", "Workout not found")
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (wc *WorkoutController) UpdateWorkout(c *gin.Context) {
	userID := c.GetString("user_id")
	workoutID := c.Param("id")

	workout, err := wc.workoutRepo.GetByID(workoutID)
	if err != nil || workout.UserID != userID {
		utils.SendError(c, http.StatusNotFound, "not_found", "Workout not found")
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":        req.Title,
		"duration_sec": req.DurationSec,
		"distance_km":  req.DistanceKm,
		"calories":     req.Calories,
		"notes":        req.Notes,
	}
	if req.Activity != "" {
		activity := models.ActivityType(req.Activity)
		if !activity.Valid() {
			utils.SendError(c, http.StatusBadRequest, "validation_error", "Unknown activity type")
			return
		}
		updates["activity"] = activity
	}
	if req.PerformedAt != nil {
		updates["performed_at"] = *req.PerformedAt
	}

	if err := wc.workoutRepo.Update(workoutID, updates); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to update workout")
		return
	}

	if req.Exercises != nil {
		exercises := make([]models.Exercise, 0, len(req.Exercises))
		for i, ex := range req.Exercises {
			exercises = append(exercises, models.Exercise{
				ID:        uuid.New().String(),
				WorkoutID: workoutID,
				Name:      ex.Name,
				Sets:      ex.Sets,
				Reps:      ex.Reps,
				WeightKg:  ex.WeightKg,
				Position:  i,
			})
		}
		if err := wc.workoutRepo.ReplaceExercises(workoutID, exercises); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to update exercises")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout updated successfully"})
}

func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	userID := c.GetString("user_id")
	workoutID := c.Param("id")

	workout, err := wc.workoutRepo.GetByID(workoutID)
	if err != nil || workout.UserID != userID {
		utils.SendError(c, http.StatusNotFound, "not_found", "Workout not found")
		return
	}

	if err := wc.workoutRepo.Delete(workoutID); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to delete workout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}
