// File: /controllers/post_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitcircle-api/models"
	"fitcircle-api/services"
	"fitcircle-api/utils"
)

type PostController struct {
	postService *services.PostService
	feedService *services.FeedService
}

func NewPostController(postService *services.PostService, feedService *services.FeedService) *PostController {
	return &PostController{
		postService: postService,
		feedService: feedService,
	}
}

type CreatePostRequest struct {
	Content    string   `json:"content" binding:"required"`
	WorkoutID  *string  `json:"workout_id"`
	ImageUrls  []string `json:"image_urls"`
	Visibility string   `json:"visibility"`
}

type UpdatePostRequest struct {
	Content    *string   `json:"content"`
	ImageUrls  *[]string `json:"image_urls"`
	Visibility *string   `json:"visibility"`
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

func (pc *PostController) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.postService.CreatePost(userID, services.CreatePostInput{
		Content:    req.Content,
		WorkoutID:  req.WorkoutID,
		ImageUrls:  req.ImageUrls,
		Visibility: models.Visibility(req.Visibility),
	})
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) GetPost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	post, err := pc.postService.GetPost(postID, userID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.UpdatePostInput{
		Content:   req.Content,
		ImageUrls: req.ImageUrls,
	}
	if req.Visibility != nil {
		visibility := models.Visibility(*req.Visibility)
		input.Visibility = &visibility
	}

	post, err := pc.postService.UpdatePost(postID, userID, input)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	if err := pc.postService.DeletePost(postID, userID); err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// GetUserPosts lists one author's posts as visible to the caller.
func (pc *PostController) GetUserPosts(c *gin.Context) {
	viewerID := c.GetString("user_id")
	authorID := c.Param("id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	feed, err := pc.postService.GetUserPosts(authorID, viewerID, page, limit)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (pc *PostController) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	result, err := pc.postService.ToggleLike(postID, userID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (pc *PostController) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, commentCount, err := pc.postService.AddComment(postID, userID, req.Body)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"comment":       comment,
		"comment_count": commentCount,
	})
}

func (pc *PostController) DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")
	commentID := c.Param("commentId")

	if err := pc.postService.DeleteComment(postID, commentID, userID); err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// GetHomeFeed returns the follow-scoped feed for the authenticated user.
func (pc *PostController) GetHomeFeed(c *gin.Context) {
	userID := c.GetString("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	feed, err := pc.feedService.GetHomeFeed(userID, page, limit)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// GetDiscoverFeed returns all public posts; anonymous access is allowed.
func (pc *PostController) GetDiscoverFeed(c *gin.Context) {
	viewerID := c.GetString("user_id") // empty for anonymous callers
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	feed, err := pc.feedService.GetDiscoverFeed(viewerID, page, limit)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}
