package gateway

import "errors"

// ErrEmptyAnswer rejects classification of blank input before any network
// round trip. Caller-fixable; no retry needed.
var ErrEmptyAnswer = errors.New("please write something first")

// GatewayError wraps an upstream completion failure. Action names the
// operation for the diagnostic log; the wrapped cause is never shown to the
// user, who only sees the generic retryable message for the action.
type GatewayError struct {
	Action string
	Err    error
}

func (e *GatewayError) Error() string {
	return e.Action + ": " + e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
