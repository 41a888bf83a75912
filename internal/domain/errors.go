package domain

import "fmt"

// ValidationError reports bad or missing caller input. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError reports a failed or malformed response from a third-party
// dependency. Handlers map it to 500 with a generic message; the detail is
// for logs only.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("upstream %s failed", e.Op)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
