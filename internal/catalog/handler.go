package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Menu browsing (read-only)
// --------------------------------------------------

func (h *Handler) Menu(c *gin.Context) {
	products, err := h.service.Menu(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) Product(c *gin.Context) {
	p, err := h.service.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}
	c.JSON(http.StatusOK, p)
}
