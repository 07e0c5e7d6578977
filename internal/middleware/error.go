package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macroai/backend/internal/model"
)

// ErrorHandler is a middleware that recovers from panics, logs them and returns a JSON error response
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("[ErrorHandler] Panic (request %s): %v", GetRequestID(c), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{Detail: "Internal Server Error"})
	})
}

// NotFound answers unknown routes in the same JSON error shape
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, model.ErrorResponse{Detail: "Not Found"})
}
