package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"petbnb/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub *Hub
	log *zap.Logger
}

func NewHandler(hub *Hub, log *zap.Logger) *Handler {
	return &Handler{hub: hub, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/bookings", h.Subscribe)
}

// Subscribe upgrades the connection and keeps it registered until the
// client goes away. Auth rides in the token query parameter because
// websocket clients can't set headers; claims are decoded unverified, same
// as the HTTP middleware, since the token never grants anything locally.
func (h *Handler) Subscribe(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required. Use ?token=YOUR_TOKEN")
		return
	}

	claims := jwtlib.MapClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(token, claims); err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Malformed token")
		return
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		userID, _ = claims["user_id"].(string)
	}
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token has no user id")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(userID, conn)
	h.log.Debug("booking updates subscriber connected", zap.String("user_id", userID))

	defer func() {
		h.hub.Unregister(userID)
		h.log.Debug("booking updates subscriber disconnected", zap.String("user_id", userID))
	}()

	// Drain control frames; the relay is one-way.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
