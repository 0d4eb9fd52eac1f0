package apihandlers

import (
	"github.com/gin-gonic/gin"

	"rulebot/internal/app"
)

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(RequestID(), CORS(a.Config.CORS.AllowedOrigins), BodyLimit(a.Config.Server.MaxBodyBytes))

	h := NewAPIHandler(a)

	api := router.Group("/api")
	{
		api.POST("/chat", h.ChatHandler)
		api.GET("/rules", h.RulesHandler)
	}

	router.GET("/health", h.HealthHandler)
	return router
}
