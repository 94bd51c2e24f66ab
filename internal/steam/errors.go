package steam

import "fmt"

// Error types for Steam API operations.
var (
	ErrKeyUnauthorized  = fmt.Errorf("api key not authorized")
	ErrProfileNotFound  = fmt.Errorf("profile not found")
	ErrInvalidReference = fmt.Errorf("invalid profile reference")
	ErrInvalidSteamID   = fmt.Errorf("invalid steam id")
	ErrNoMarketListing  = fmt.Errorf("item has no market listing")
	ErrAPIUnavailable   = fmt.Errorf("steam API unavailable")
)

// APIError represents an API error with status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("steam API error (status %d): %s", e.StatusCode, e.Message)
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}
