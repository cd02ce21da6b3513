// Package errors provides the structured API error types and the centralized
// RFC 7807 error handler used by the HTTP layer.
package errors

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response.
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError.
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details.
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound       = New(http.StatusNotFound, "NOT_FOUND", "The requested resource was not found")
	ErrInternalServer = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
)

// ErrMethodNotAllowed creates the error for an unsupported HTTP method.
func ErrMethodNotAllowed(method string) *APIError {
	return New(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED",
		fmt.Sprintf("Method %s is not allowed for this endpoint", method))
}

// ErrUnknownBatch creates the error for an unrecognized batch identifier.
func ErrUnknownBatch(batch string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "UNKNOWN_BATCH",
		fmt.Sprintf("Batch %q is not configured", batch), map[string]interface{}{"batch": batch})
}

// ErrDownloadFailed creates the error for a failed workbook download.
func ErrDownloadFailed(err error) *APIError {
	return NewWithDetails(http.StatusBadGateway, "DOWNLOAD_FAILED",
		"Failed to download source workbook", err.Error())
}

// ErrWorkbookUnreadable creates the error for an undecodable workbook.
func ErrWorkbookUnreadable(err error) *APIError {
	return NewWithDetails(http.StatusInternalServerError, "WORKBOOK_UNREADABLE",
		"Source workbook could not be decoded", err.Error())
}
