// File: /controllers/user_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fitcircle-api/models"
	"fitcircle-api/services"
	"fitcircle-api/utils"
)

type UserController struct {
	db            *gorm.DB
	directory     *services.DirectoryService
	followService *services.FollowService
}

func NewUserController(db *gorm.DB, directory *services.DirectoryService, followService *services.FollowService) *UserController {
	return &UserController{
		db:            db,
		directory:     directory,
		followService: followService,
	}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "not_found", "User not found")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Name   *string `json:"name"`
		Avatar *string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if err := uc.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// GetUser resolves a public user reference by id.
func (uc *UserController) GetUser(c *gin.Context) {
	ref, err := uc.directory.ResolveUser(c.Param("id"))
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

// GetUserByUsername resolves a public user reference by username.
func (uc *UserController) GetUserByUsername(c *gin.Context) {
	ref, err := uc.directory.ResolveUserByUsername(c.Param("username"))
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

func (uc *UserController) FollowUser(c *gin.Context) {
	userID := c.GetString("user_id")
	targetUserID := c.Param("id")

	if err := uc.followService.Follow(userID, targetUserID); err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully followed user"})
}

func (uc *UserController) UnfollowUser(c *gin.Context) {
	userID := c.GetString("user_id")
	targetUserID := c.Param("id")

	if err := uc.followService.Unfollow(userID, targetUserID); err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully unfollowed user"})
}

func (uc *UserController) GetFollowers(c *gin.Context) {
	userID := c.Param("id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	followers, err := uc.followService.ListFollowers(userID, page, limit)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, followers)
}

func (uc *UserController) GetFollowing(c *gin.Context) {
	userID := c.Param("id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	following, err := uc.followService.ListFollowing(userID, page, limit)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, following)
}

// IsFollowing reports whether the authenticated user follows the target.
func (uc *UserController) IsFollowing(c *gin.Context) {
	userID := c.GetString("user_id")
	targetUserID := c.Param("id")

	following, err := uc.followService.IsFollowing(userID, targetUserID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}
