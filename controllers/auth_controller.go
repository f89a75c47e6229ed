// File: /controllers/auth_controller.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitcircle-api/models"
	"fitcircle-api/services"
	"fitcircle-api/utils"
)

type AuthController struct {
	db           *gorm.DB
	jwtSecret    string
	emailService *services.EmailService
	logger       zerolog.Logger
}

func NewAuthController(db *gorm.DB, jwtSecret string, emailService *services.EmailService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		db:           db,
		jwtSecret:    jwtSecret,
		emailService: emailService,
		logger:       logger,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if !utils.IsValidUsername(username) {
		utils.SendError(c, http.StatusBadRequest, "validation_error", "Username must be 3-50 characters of lowercase letters, digits and underscores")
		return
	}
	if !utils.IsValidPassword(req.Password) {
		utils.SendError(c, http.StatusBadRequest, "validation_error", "Password is too weak")
		return
	}

	var existingUser models.User
	if err := ac.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "conflict", "Email already registered")
		return
	}
	if err := ac.db.Where("username = ?", username).First(&existingUser).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "conflict", "Username already taken")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to hash password")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Username: username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := ac.db.Create(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to create user")
		return
	}

	go func() {
		if err := ac.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			ac.logger.Warn().Err(err).Str("email", user.Email).Msg("welcome email failed")
		}
	}()

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to generate token")
		return
	}

	user.Password = ""
	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "unauthorized", "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "unauthorized", "Invalid email or password")
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "internal_error", "Failed to generate token")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

func (ac *AuthController) generateJWT(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
