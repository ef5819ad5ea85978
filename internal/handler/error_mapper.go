package handler

import (
	"errors"

	"github.com/forgo/trivia/api/internal/model"
	"github.com/forgo/trivia/api/internal/service"
)

// Client-facing messages for service errors
const (
	MsgInvalidPagination   = "Invalid limit or page"
	MsgNoData              = "No data found"
	MsgNoMatches           = "No matching data found"
	MsgPageOutOfRange      = "Page out of range"
	MsgSearchQueryRequired = "Search query 'q' is required"
	MsgTriviaNotFound      = "Quiz item not found"
)

// MapServiceError converts a service error to an APIError response.
// Anything not recognized is a storage failure and becomes a generic 500
// so that driver details never reach the client.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	var fieldErr *model.FieldError
	if errors.As(err, &fieldErr) {
		return model.NewValidationError(fieldErr)
	}

	switch {
	// ===== Bad Request → 400 =====
	case errors.Is(err, service.ErrInvalidPagination):
		return model.NewBadRequestError(MsgInvalidPagination)
	case errors.Is(err, service.ErrSearchQueryRequired):
		return model.NewBadRequestError(MsgSearchQueryRequired)

	// ===== Not Found → 404 =====
	case errors.Is(err, service.ErrNoData):
		return model.NewNotFoundError(MsgNoData)
	case errors.Is(err, service.ErrNoMatches):
		return model.NewNotFoundError(MsgNoMatches)
	case errors.Is(err, service.ErrPageOutOfRange):
		return model.NewNotFoundError(MsgPageOutOfRange)
	case errors.Is(err, service.ErrTriviaNotFound):
		return model.NewNotFoundError(MsgTriviaNotFound)
	}

	return model.NewInternalError("")
}
