package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fitcircle-api/database"
	"fitcircle-api/models"
	"fitcircle-api/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newWorkoutRouter wires the workout endpoints behind a stub auth layer that
// pins the caller's identity.
func newWorkoutRouter(t *testing.T, userID string) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	wc := NewWorkoutController(repositories.NewWorkoutRepository(db))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.POST("/workouts", wc.CreateWorkout)
	r.PUT("/workouts/:id", wc.UpdateWorkout)
	return r, db
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateWorkoutActivityValidation(t *testing.T) {
	r, db := newWorkoutRouter(t, "u1")

	w := doJSON(r, http.MethodPost, "/workouts", `{"title":"Intervals","activity":"parkour"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")

	var count int64
	require.NoError(t, db.Model(&models.Workout{}).Count(&count).Error)
	assert.Zero(t, count)

	w = doJSON(r, http.MethodPost, "/workouts", `{"title":"Intervals","activity":"run"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Omitted activity defaults instead of failing.
	w = doJSON(r, http.MethodPost, "/workouts", `{"title":"Misc session"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var workout models.Workout
	require.NoError(t, db.Order("created_at DESC").First(&workout, "title = ?", "Misc session").Error)
	assert.Equal(t, models.ActivityOther, workout.Activity)
}

func TestUpdateWorkoutActivityValidation(t *testing.T) {
	r, db := newWorkoutRouter(t, "u1")

	workout := models.Workout{
		ID:       uuid.New().String(),
		UserID:   "u1",
		Title:    "Long ride",
		Activity: models.ActivityRide,
	}
	require.NoError(t, db.Create(&workout).Error)

	w := doJSON(r, http.MethodPut, "/workouts/"+workout.ID, `{"title":"Long ride","activity":"skydiving"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var kept models.Workout
	require.NoError(t, db.First(&kept, "id = ?", workout.ID).Error)
	assert.Equal(t, models.ActivityRide, kept.Activity)

	w = doJSON(r, http.MethodPut, "/workouts/"+workout.ID, `{"title":"Long ride","activity":"swim"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&kept, "id = ?", workout.ID).Error)
	assert.Equal(t, models.ActivitySwim, kept.Activity)
}
