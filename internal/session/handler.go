package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kioskqr/internal/catalog"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// Create opens a new kiosk session for the chosen order type and
// returns the token the client sends on every later request.
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		OrderType string `json:"order_type"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	orderType := catalog.OrderType(req.OrderType)
	if !orderType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_type must be 'takeout' or 'delivery'"})
		return
	}

	s := h.manager.Create(orderType)
	c.JSON(http.StatusCreated, gin.H{
		"token":      s.Token,
		"order_type": orderType,
	})
}

// Close ends the session deliberately (the customer navigated away).
func (h *Handler) Close(c *gin.Context) {
	token := c.GetHeader("X-Session-Token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session token"})
		return
	}
	if err := h.manager.Close(token); err != nil {
		c.JSON(http.StatusGone, gin.H{"error": "session expired or not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}
