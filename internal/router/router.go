package router

import (
	"github.com/gin-gonic/gin"

	"github.com/macroai/backend/internal/api"
	"github.com/macroai/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	healthHandler *api.HealthHandler,
	nutritionHandler *api.NutritionHandler,
) *gin.Engine {
	router := gin.New()

	if gin.Mode() != gin.TestMode {
		router.Use(gin.Logger())
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(middleware.CORS())

	router.NoRoute(middleware.NotFound)

	healthHandler.RegisterRoutes(router)
	nutritionHandler.RegisterRoutes(router)

	return router
}
