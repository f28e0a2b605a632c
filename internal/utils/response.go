package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error payload. ErrorType distinguishes error
// kinds that share a status code so clients can branch without parsing
// messages.
type ErrorResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	ErrorType string `json:"error_type,omitempty"`
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: message,
		Status:  "error",
	})
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Message:   message,
		Status:    "error",
		ErrorType: "unauthorized",
	})
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorResponse{
		Message:   message,
		Status:    "forbidden",
		ErrorType: "access_denied",
	})
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Message:   message,
		Status:    "error",
		ErrorType: "not_found",
	})
}

// InternalServerError sends a 500 response with a generic message. The
// underlying error must never reach the client; callers log it instead.
func InternalServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "An unexpected error occurred. Please try again.",
		Status:  "error",
	})
}
