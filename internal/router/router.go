package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kioskhub/dashboard/backend/config"
	"github.com/kioskhub/dashboard/backend/internal/api"
	"github.com/kioskhub/dashboard/backend/internal/middleware"
)

// SetupRouter builds the gin engine with the middleware chain and all API routes.
func SetupRouter(cfg *config.Config, deps api.Dependencies) *gin.Engine {
	gin.SetMode(cfg.Env.GinMode())

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	router.NoRoute(func(c *gin.Context) {
		middleware.AbortWithError(c, http.StatusNotFound, "Not Found")
	})

	api.RegisterRoutes(router, deps)
	return router
}
