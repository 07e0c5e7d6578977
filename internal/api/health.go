package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macroai/backend/internal/model"
)

const healthStatus = "MacroAI is running"

// HealthHandler reports liveness and the model chosen at startup
type HealthHandler struct {
	modelID string
}

// NewHealthHandler creates a new HealthHandler for the given model identifier
func NewHealthHandler(modelID string) *HealthHandler {
	return &HealthHandler{modelID: modelID}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.HealthCheck)
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthStatus{
		Status: healthStatus,
		Model:  h.modelID,
	})
}
