// File: /utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcircle-api/services"
)

// ErrorResponse carries a stable machine-readable code alongside the
// human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// SendServiceError maps service-layer errors onto HTTP statuses and codes.
func SendServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Message: ve.Error(),
			Code:    "validation_error",
		})
	case errors.Is(err, services.ErrNotFound):
		SendError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, services.ErrForbidden):
		SendError(c, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, services.ErrSelfFollow):
		SendError(c, http.StatusBadRequest, "self_follow", err.Error())
	case errors.Is(err, services.ErrAlreadyFollowing):
		SendError(c, http.StatusConflict, "already_following", err.Error())
	case errors.Is(err, services.ErrConflict):
		SendError(c, http.StatusConflict, "conflict", err.Error())
	default:
		SendError(c, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(http.StatusOK, response)
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Message: message,
		Data:    data,
	})
}
