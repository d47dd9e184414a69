package circlo

import (
	"errors"
	"fmt"
)

// ErrNoToken is returned before any outbound call when no Circlo credential
// is configured under CIRCLO_TOKEN or CIRCLO_API_TOKEN.
const ErrNoToken = constError("no Circlo token configured (set CIRCLO_TOKEN or CIRCLO_API_TOKEN)")

type constError string

func (e constError) Error() string {
	return string(e)
}

// UpstreamError is returned when Circlo answers with a non-success status.
// The status code and response body are preserved verbatim so the operator
// sees exactly what the platform said.
type UpstreamError struct {
	StatusCode int
	// ContentType is the platform's Content-Type header for the error body.
	ContentType string
	Body        []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("circlo returned status %d: %s", e.StatusCode, string(e.Body))
}

// AsUpstreamError unwraps err into an *UpstreamError if it is one.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}
