package service

import (
	"errors"
	"time"
)

// Error taxonomy surfaced to handlers. Handlers map these onto
// 404/400/403 responses with the status envelope.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
	ErrFailed     = errors.New("operation failed")
)

// Dates are exchanged and stored as ISO "YYYY-MM-DD" strings.
const dateLayout = "2006-01-02"

func today() string {
	return time.Now().Format(dateLayout)
}
