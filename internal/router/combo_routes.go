package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kioskqr/internal/cart"
	"kioskqr/internal/catalog"
	"kioskqr/internal/middleware"
	"kioskqr/internal/session"
)

func registerComboRoutes(api *gin.RouterGroup, catalogService *catalog.Service) {
	api.POST("/combo/draft", func(c *gin.Context) {
		var req struct {
			ProductID string `json:"product_id"`
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
		draft, err := s.StartDraft(product)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, draftResponse(s, draft))
	})

	api.GET("/combo/draft", func(c *gin.Context) {
		s := middleware.SessionFrom(c)
		draft, err := s.Draft()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draftResponse(s, draft))
	})

	api.PUT("/combo/draft/selection", func(c *gin.Context) {
		var req struct {
			Group    string `json:"group"`
			ItemID   string `json:"item_id"`
			Quantity int    `json:"quantity"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		s := middleware.SessionFrom(c)
		if err := s.SetDraftSelection(req.Group, req.ItemID, req.Quantity); err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		draft, err := s.Draft()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draftResponse(s, draft))
	})

	api.GET("/combo/draft/validate", func(c *gin.Context) {
		s := middleware.SessionFrom(c)
		result, err := s.ValidateDraft()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	})

	api.POST("/combo/draft/commit", func(c *gin.Context) {
		var req struct {
			Quantity int    `json:"quantity"`
			Notes    string `json:"notes"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		s := middleware.SessionFrom(c)
		line, err := s.CommitDraft(req.Quantity, req.Notes)
		if err != nil {
			if errors.Is(err, cart.ErrInvalidSelections) {
				// Recoverable for the customer: the draft stays open.
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"line":  line,
			"total": s.Cart.Total(),
		})
	})

	api.DELETE("/combo/draft", func(c *gin.Context) {
		s := middleware.SessionFrom(c)
		s.CancelDraft()
		c.JSON(http.StatusOK, gin.H{"message": "draft cancelled"})
	})
}

func draftResponse(s *session.Session, draft *session.Draft) gin.H {
	progress, _ := s.DraftProgress()
	return gin.H{
		"product_id": draft.Product.ID,
		"selections": draft.Selections,
		"progress":   progress,
	}
}

func draftErrorStatus(err error) int {
	if errors.Is(err, session.ErrNoDraft) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
