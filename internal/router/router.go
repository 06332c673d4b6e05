package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kioskqr/internal/catalog"
	"kioskqr/internal/middleware"
	"kioskqr/internal/session"
)

// New assembles the kiosk API. Everything past session creation runs
// behind the session middleware, so every customer tap doubles as a
// qualifying interaction for the inactivity timer.
func New(catalogService *catalog.Service, manager *session.Manager) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	sessionHandler := session.NewHandler(manager)
	r.POST("/sessions", sessionHandler.Create)
	r.DELETE("/sessions", sessionHandler.Close)

	catalogHandler := catalog.NewHandler(catalogService)

	api := r.Group("", middleware.SessionMiddleware(manager))
	{
		api.GET("/menu", catalogHandler.Menu)
		api.GET("/menu/:id", catalogHandler.Product)

		registerCartRoutes(api, catalogService)
		registerComboRoutes(api, catalogService)
	}

	return r
}
