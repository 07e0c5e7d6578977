package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/macroai/backend/internal/middleware"
	"github.com/macroai/backend/internal/model"
	"github.com/macroai/backend/internal/service"
)

// RateLimitedMessage is returned when the provider signals rate limiting
const RateLimitedMessage = "Traffic is high. Please wait 10s and try again."

// rateLimitMarker is the provider's rate-limit signal as it appears in error text
const rateLimitMarker = "429"

// NutritionHandler handles nutrition analysis requests
type NutritionHandler struct {
	nutritionService service.INutritionService
}

// NewNutritionHandler creates a new NutritionHandler instance
func NewNutritionHandler(nutritionService service.INutritionService) *NutritionHandler {
	return &NutritionHandler{
		nutritionService: nutritionService,
	}
}

// RegisterRoutes registers the nutrition routes
func (h *NutritionHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/analyze", h.Analyze)
}

// Analyze handles POST /analyze.
// On success the body is the model's JSON relayed unchanged; it is expected,
// not guaranteed, to have the shape of model.NutritionEstimate.
func (h *NutritionHandler) Analyze(c *gin.Context) {
	var req model.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, model.ErrorResponse{Detail: err.Error()})
		return
	}

	result, err := h.nutritionService.Analyze(c.Request.Context(), *req.Query)
	if err != nil {
		log.Printf("[NutritionHandler] Error during generation (request %s): %v", middleware.GetRequestID(c), err)
		status, detail := errorResponse(err)
		c.JSON(status, model.ErrorResponse{Detail: detail})
		return
	}

	c.JSON(http.StatusOK, result)
}

// errorResponse maps a generation failure onto a status code and detail text
func errorResponse(err error) (int, string) {
	if strings.Contains(err.Error(), rateLimitMarker) {
		return http.StatusTooManyRequests, RateLimitedMessage
	}
	return http.StatusInternalServerError, err.Error()
}
