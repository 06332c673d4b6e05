package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kioskqr/internal/cart"
	"kioskqr/internal/catalog"
	"kioskqr/internal/middleware"
)

func registerCartRoutes(api *gin.RouterGroup, catalogService *catalog.Service) {
	api.GET("/cart", func(c *gin.Context) {
		s := middleware.SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{
			"cart":  s.Cart.Snapshot(),
			"total": s.Cart.Total(),
		})
	})

	api.POST("/cart/lines", func(c *gin.Context) {
		var req struct {
			ProductID string `json:"product_id"`
			Quantity  int    `json:"quantity"`
			Notes     string `json:"notes"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		product, err := catalogService.Product(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}

		s := middleware.SessionFrom(c)
		line, err := s.Cart.AddLine(product, req.Quantity, req.Notes)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"line":  line,
			"total": s.Cart.Total(),
		})
	})

	api.PATCH("/cart/lines/:id", func(c *gin.Context) {
		var req struct {
			Quantity *int    `json:"quantity"`
			Notes    *string `json:"notes"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		s := middleware.SessionFrom(c)
		lineID := c.Param("id")

		if req.Quantity != nil {
			if err := s.Cart.UpdateQuantity(lineID, *req.Quantity); err != nil {
				c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
		}
		if req.Notes != nil {
			if err := s.Cart.SetLineNotes(lineID, *req.Notes); err != nil {
				// Quantity 0 above removes the line; notes on a removed
				// line are simply dropped.
				if !(req.Quantity != nil && *req.Quantity == 0 && errors.Is(err, cart.ErrLineNotFound)) {
					c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
					return
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"cart":  s.Cart.Snapshot(),
			"total": s.Cart.Total(),
		})
	})

	api.DELETE("/cart/lines/:id", func(c *gin.Context) {
		s := middleware.SessionFrom(c)
		if err := s.Cart.RemoveLine(c.Param("id")); err != nil {
			c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": s.Cart.Total()})
	})

	api.PUT("/cart/notes", func(c *gin.Context) {
		var req struct {
			Notes string `json:"notes"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		s := middleware.SessionFrom(c)
		s.Cart.SetNotes(req.Notes)
		c.JSON(http.StatusOK, gin.H{"message": "notes updated"})
	})

	api.DELETE("/cart", func(c *gin.Context) {
		s := middleware.SessionFrom(c)
		s.Cart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	})
}

func cartErrorStatus(err error) int {
	if errors.Is(err, cart.ErrLineNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
