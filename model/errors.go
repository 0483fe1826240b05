package model

import (
	"fmt"
	"time"
)

// NetworkError wraps an upstream model-API failure (timeout, transport error,
// non-2xx). The assistant converts it into an Error routed response with a
// retry hint; it is never retried automatically.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError reports model output that could not be decoded into
// a routed response. Raw carries the original text for diagnostics only;
// users see a generic parse-error message.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// TimeoutError reports a subprocess that exceeded its configured deadline.
// The underlying process has already been killed when this is returned.
type TimeoutError struct {
	Command string
	Limit   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command exceeded timeout of %s", e.Limit)
}
