package pagination

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidParams is returned when page or limit is not a positive integer
var ErrInvalidParams = errors.New("invalid limit or page")

// Config holds pagination defaults
type Config struct {
	DefaultPage  int // Page used when none is supplied (typically 1)
	DefaultLimit int // Items per page used when none is supplied (typically 10)
}

// DefaultConfig returns page=1, limit=10
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
	}
}

// Params represents pagination query parameters from an HTTP request
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParseQueryParams reads page and limit from the request query string.
// Missing or non-numeric values take the configured defaults; numeric values
// are returned unchanged and must be checked with Validate.
func ParseQueryParams(r *http.Request, config Config) Params {
	query := r.URL.Query()
	return Params{
		Page:  parseInt(query.Get("page"), config.DefaultPage),
		Limit: parseInt(query.Get("limit"), config.DefaultLimit),
	}
}

// Validate rejects non-positive page or limit values
func (p Params) Validate() error {
	if p.Limit <= 0 || p.Page <= 0 {
		return ErrInvalidParams
	}
	return nil
}

// Offset returns the number of documents to skip for this window
func (p Params) Offset() int {
	return CalculateOffset(p.Page, p.Limit)
}

func parseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
