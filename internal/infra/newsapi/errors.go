package newsapi

import (
	"errors"
	"fmt"
)

// ErrDecode indicates a response body that could not be decoded.
var ErrDecode = errors.New("decode news api response")

// StatusError is returned when the API answers with a non-200 status or an
// error envelope.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("news api status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("news api status %d: %s", e.StatusCode, e.Message)
}
