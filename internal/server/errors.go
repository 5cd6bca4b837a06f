package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIError is the wire shape of every error response.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e *APIError) Error() string { return e.Code }

var (
	ErrNotFound           = &APIError{Status: http.StatusNotFound, Code: "not_found"}
	ErrUnauthorized       = &APIError{Status: http.StatusUnauthorized, Code: "unauthorized"}
	ErrServiceUnavailable = &APIError{Status: http.StatusServiceUnavailable, Code: "service_unavailable"}
)

func invalidRequestError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "request body could not be parsed"}
}

func newValidationError(field, code, message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: code, Field: field, Message: message}
}

// AbortWithError renders err as a JSON error response. Domain sentinel
// errors carry snake_case codes; "not_found" maps to 404 and "invalid_*"
// to 400, everything else is an internal error.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	code := err.Error()
	switch {
	case code == "not_found":
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": &APIError{Code: code}})
	case strings.HasPrefix(code, "invalid_"):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": &APIError{Code: code}})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": &APIError{Code: "internal_error"}})
	}
}
