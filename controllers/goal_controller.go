// File: /controllers/goal_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcircle-api/models"
	"fitcircle-api/utils"
)

type GoalController struct {
	db *gorm.DB
}

func NewGoalController(db *gorm.DB) *GoalController {
	return &GoalController{db: db}
}

type CreateGoalRequest struct {
	Metric   string     `json:"metric" binding:"required"`
	Target   float64    `json:"target" binding:"required,gt=0"`
	Deadline *time.Time `json:"deadline"`
}

type UpdateGoalRequest struct {
	Target   *float64   `json:"target"`
	Progress *float64   `json:"progress"`
	Deadline *time.Time `json:"deadline"`
}

func (gc *GoalController) GetGoals(c *gin.Context) {
	userID := c.GetString("user_id")

	var goals []models.Goal
	if err := gc.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to fetch goals")
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (gc *GoalController) CreateGoal(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal := models.Goal{
		ID:       uuid.New().String(),
		UserID:   userID,
		Metric:   req.Metric,
		Target:   req.Target,
		Deadline: req.Deadline,
	}
	if err := gc.db.Create(&goal).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to create goal")
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (gc *GoalController) UpdateGoal(c *gin.Context) {
	userID := c.GetString("user_id")
	goalID := c.Param("id")

	var goal models.Goal
	if err := gc.db.First(&goal, "id = ? AND user_id = ?", goalID, userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "not_found", "Goal not found")
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Target != nil {
		updates["target"] = *req.Target
	}
	if req.Progress != nil {
		updates["progress"] = *req.Progress
		target := goal.Target
		if req.Target != nil {
			target = *req.Target
		}
		updates["achieved"] = *req.Progress >= target
	}
	if req.Deadline != nil {
		updates["deadline"] = *req.Deadline
	}

	if err := gc.db.Model(&goal).Updates(updates).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to update goal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal updated successfully"})
}

func (gc *GoalController) DeleteGoal(c *gin.Context) {
	userID := c.GetString("user_id")
	goalID := c.Param("id")

	res := gc.db.Delete(&models.Goal{}, "id = ? AND user_id = ?", goalID, userID)
	if res.Error != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to delete goal")
		return
	}
	if res.RowsAffected == 0 {
		utils.SendError(c, http.StatusNotFound, "not_found", "Goal not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
