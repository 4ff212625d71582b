// Package httputil provides HTTP response helpers and common middleware.
package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fityannugroho/openmusic-api/pkg/errors"
)

// HeaderDataSource reports where a derived read was served from. Handlers
// set it to "cache" when the value came from the read-through cache. It is
// observability only and carries no correctness weight.
const HeaderDataSource = "X-Data-Source"

// Response represents a standard API response.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	RequestID string      `json:"request_id"`
}

// ErrorInfo represents error information in the response.
type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse sends a 200 response with data.
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		RequestID: GetRequestID(c),
	})
}

// CreatedResponse sends a 201 response with data.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success:   true,
		Data:      data,
		RequestID: GetRequestID(c),
	})
}

// MessageResponse sends a 200 response with a human-readable message.
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Message:   message,
		RequestID: GetRequestID(c),
	})
}

// ErrorResponse sends an error response. Domain errors carry their own
// status and display message; anything unclassified becomes a generic 500
// that leaks no internal detail.
func ErrorResponse(c *gin.Context, err error) {
	appErr, ok := err.(*errors.Error)
	if !ok {
		_ = c.Error(err) // keep the cause in the gin error list for the logger
		appErr = errors.ErrInternal
	}

	c.JSON(appErr.HTTPStatus, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
		RequestID: GetRequestID(c),
	})
}

// MarkCacheHit flags the response as served from cache.
func MarkCacheHit(c *gin.Context, fromCache bool) {
	if fromCache {
		c.Header(HeaderDataSource, "cache")
	}
}

// GetRequestID retrieves or generates a request ID.
func GetRequestID(c *gin.Context) string {
	requestID := c.GetString("request_id")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return requestID
}

// GetUserID retrieves the authenticated user ID from context.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if userID == nil {
		return ""
	}
	return userID.(string)
}

// BindAndValidate binds and validates request data.
func BindAndValidate(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return errors.ErrInvalidInput.WithError(err)
	}
	return nil
}
