// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork wraps transport-level failures: DNS, connection refused,
	// timeouts, cancelled contexts.
	ErrNetwork = errors.New("network failure")

	// ErrHTTPStatus matches every [*StatusError].
	ErrHTTPStatus = errors.New("http status failure")

	// ErrUnexpectedResponse is returned when a body has neither the expected
	// JSON shape nor any usable text.
	ErrUnexpectedResponse = errors.New("unexpected response from server")

	// ErrRateLimited is returned when the local outbound limiter refuses a
	// request before it is sent.
	ErrRateLimited = errors.New("too many requests, slow down")
)

// UnexpectedResponseMessage is used when an error body carries no text.
const UnexpectedResponseMessage = "Unexpected response from server"

// StatusError is a non-2xx response.
type StatusError struct {
	Code int
	// Message is the user-facing text extracted from the response body.
	Message string

	unexpected bool
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrHTTPStatus) hold for every StatusError and
// errors.Is(err, ErrUnexpectedResponse) hold when the body was unusable.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrHTTPStatus:
		return true
	case ErrUnexpectedResponse:
		return e.unexpected
	default:
		return false
	}
}

// NewStatusError builds a StatusError with an explicit message.
func NewStatusError(code int, message string) *StatusError {
	return &StatusError{Code: code, Message: message}
}

// StatusCode returns the HTTP code carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
