package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Messages shared by handlers and middleware
const (
	MsgAuthFailure    = "Authentication Failure!"
	MsgInternalError  = "Internal Server Error"
	MsgInvalidJSON    = "Invalid JSON body"
	MsgRateLimited    = "Too Many Requests"
	MsgRouteNotFound  = "Route not found"
	MsgTriviaDeleted  = "Quiz item deleted successfully"
	MsgServiceHealthy = "ok"
)

// APIError is the error body returned by every failing endpoint: {"error": "..."}
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (f *FieldError) Error() string {
	return f.Message
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// MessageResponse is the body of a successful operation with nothing else to return
type MessageResponse struct {
	Message string `json:"message"`
}

// Common error constructors

func NewUnauthorizedError(message string) *APIError {
	if message == "" {
		message = MsgAuthFailure
	}
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

func NewValidationError(field *FieldError) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: field.Message}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func NewInternalError(message string) *APIError {
	if message == "" {
		message = MsgInternalError
	}
	return &APIError{Status: http.StatusInternalServerError, Message: message}
}

func NewRateLimitError() *APIError {
	return &APIError{Status: http.StatusTooManyRequests, Message: MsgRateLimited}
}

func NewServiceUnavailableError(message string) *APIError {
	return &APIError{Status: http.StatusServiceUnavailable, Message: message}
}
