// File: /controllers/notification_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitcircle-api/services"
	"fitcircle-api/utils"
)

type NotificationController struct {
	notificationService *services.NotificationService
}

func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// GetNotifications gets paginated notifications for the current user
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID := c.GetString("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	notifications, err := nc.notificationService.List(userID, page, limit)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetNotificationStats gets unread/total counts
func (nc *NotificationController) GetNotificationStats(c *gin.Context) {
	userID := c.GetString("user_id")

	stats, err := nc.notificationService.Stats(userID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MarkAsRead marks a single notification as read
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	userID := c.GetString("user_id")
	notificationID := c.Param("id")

	if err := nc.notificationService.MarkAsRead(userID, notificationID); err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllAsRead marks all of the user's notifications as read
func (nc *NotificationController) MarkAllAsRead(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := nc.notificationService.MarkAllAsRead(userID); err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
