// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"fitcircle-api/config"
	"fitcircle-api/controllers"
	"fitcircle-api/middleware"
	"fitcircle-api/realtime"
	"fitcircle-api/repositories"
	"fitcircle-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, hub *realtime.Hub, publisher services.EventPublisher, logger zerolog.Logger) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	postRepo := repositories.NewPostRepository(db)
	workoutRepo := repositories.NewWorkoutRepository(db)

	// Services
	notificationService := services.NewNotificationService(db, hub, publisher, logger)
	directory := services.NewDirectoryService(userRepo)
	followService := services.NewFollowService(followRepo, userRepo, notificationService)
	postService := services.NewPostService(postRepo, userRepo, workoutRepo, notificationService)
	feedService := services.NewFeedService(postRepo)
	emailService := services.NewEmailService(cfg, logger)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService, logger)
	userController := controllers.NewUserController(db, directory, followService)
	postController := controllers.NewPostController(postService, feedService)
	workoutController := controllers.NewWorkoutController(workoutRepo)
	goalController := controllers.NewGoalController(db)
	notificationController := controllers.NewNotificationController(notificationService)
	realtimeController := controllers.NewRealtimeController(hub, cfg.JWTSecret, logger)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Notification socket (token via query parameter)
	r.GET("/ws", realtimeController.HandleWebSocket)

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(300, 50))

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Discover feed allows anonymous access
	v1.GET("/discover", middleware.OptionalAuthMiddleware(cfg.JWTSecret), postController.GetDiscoverFeed)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
			users.GET("/by-username/:username", userController.GetUserByUsername)
			users.GET("/:id", userController.GetUser)
			users.POST("/:id/follow", userController.FollowUser)
			users.DELETE("/:id/follow", userController.UnfollowUser)
			users.GET("/:id/follow", userController.IsFollowing)
			users.GET("/:id/followers", userController.GetFollowers)
			users.GET("/:id/following", userController.GetFollowing)
			users.GET("/:id/posts", postController.GetUserPosts)
		}

		// Post routes
		posts := protected.Group("/posts")
		{
			posts.GET("/feed", postController.GetHomeFeed)
			posts.POST("/", postController.CreatePost)
			posts.GET("/:id", postController.GetPost)
			posts.PUT("/:id", postController.UpdatePost)
			posts.DELETE("/:id", postController.DeletePost)
			posts.POST("/:id/like", postController.ToggleLike)
			posts.POST("/:id/comments", postController.CreateComment)
			posts.DELETE("/:id/comments/:commentId", postController.DeleteComment)
		}

		// Workout routes
		workouts := protected.Group("/workouts")
		{
			workouts.GET("/", workoutController.GetWorkouts)
			workouts.POST("/", workoutController.CreateWorkout)
			workouts.GET("/:id", workoutController.GetWorkout)
			workouts.PUT("/:id", workoutController.UpdateWorkout)
			workouts.DELETE("/:id", workoutController.DeleteWorkout)
		}

		// Goal routes
		goals := protected.Group("/goals")
		{
			goals.GET("/", goalController.GetGoals)
			goals.POST("/", goalController.CreateGoal)
			goals.PUT("/:id", goalController.UpdateGoal)
			goals.DELETE("/:id", goalController.DeleteGoal)
		}

		// Notification routes
		notifications := protected.Group("/notifications")
		{
			notifications.GET("/", notificationController.GetNotifications)
			notifications.GET("/stats", notificationController.GetNotificationStats)
			notifications.PUT("/:id/read", notificationController.MarkAsRead)
			notifications.PUT("/read-all", notificationController.MarkAllAsRead)
		}
	}
}
