package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Pagination Errors =====
var (
	ErrInvalidPagination = errors.New("invalid limit or page")
	ErrNoData            = errors.New("no data found")
	ErrNoMatches         = errors.New("no matching data found")
	ErrPageOutOfRange    = errors.New("page out of range")
)

// ===== Search Errors =====
var (
	ErrSearchQueryRequired = errors.New("search query is required")
)

// ===== Trivia Errors =====
var (
	ErrTriviaNotFound = errors.New("quiz item not found")
)
