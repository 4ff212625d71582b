package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fityannugroho/openmusic-api/pkg/logger"
)

// Logging records one structured log line per request. The level follows
// the response status.
func Logging(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := []logger.Field{
			logger.String("request_id", GetRequestID(c)),
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.String("query", query),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", latency),
			logger.String("client_ip", c.ClientIP()),
		}

		if userID := GetUserID(c); userID != "" {
			fields = append(fields, logger.String("user_id", userID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logger.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.WithFields(fields...).Error("HTTP request error")
		case c.Writer.Status() >= 400:
			log.WithFields(fields...).Warn("HTTP request warning")
		default:
			log.WithFields(fields...).Info("HTTP request")
		}
	}
}
