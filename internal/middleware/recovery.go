package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/fityannugroho/openmusic-api/pkg/logger"
)

// Recovery converts panics into 500 responses instead of dropped connections.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				stack := string(debug.Stack())
				requestID := GetRequestID(c)

				log.WithFields(
					logger.String("request_id", requestID),
					logger.String("panic", fmt.Sprintf("%v", err)),
					logger.String("stack", stack),
				).Error("Panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success":    false,
					"message":    "Internal server error",
					"request_id": requestID,
				})
			}
		}()

		c.Next()
	}
}
