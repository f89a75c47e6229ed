// File: /controllers/realtime_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"fitcircle-api/middleware"
	"fitcircle-api/realtime"
)

// RealtimeController upgrades authenticated clients onto the notification
// socket.
type RealtimeController struct {
	hub       *realtime.Hub
	jwtSecret string
	upgrader  websocket.Upgrader
	logger    zerolog.Logger
}

func NewRealtimeController(hub *realtime.Hub, jwtSecret string, logger zerolog.Logger) *RealtimeController {
	return &RealtimeController{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWebSocket authenticates via the token query parameter (browsers
// cannot set headers on websocket dials) and registers the connection.
func (rc *RealtimeController) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	userID, err := middleware.ParseToken(token, rc.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := rc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rc.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	rc.hub.Register(realtime.NewClient(rc.hub, conn, userID))
}
