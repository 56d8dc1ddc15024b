package types

import "errors"

// ErrUnsupportedArea is returned before any network call when the
// requested area is not one of SE1-SE4.
var ErrUnsupportedArea = errors.New("unsupported price area, must be one of SE1-SE4")

// NetworkError wraps failures to complete the upstream request:
// connection errors, timeouts and non-success status codes.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError wraps responses that were received but could not be mapped
// onto a well-formed day of price records.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
