// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package async provides a generic tri-state value for data that is fetched
// in the background: it is either still loading, failed with an error, or
// ready with a value. Exactly one of the three holds at any time.
package async

import "errors"

// Status enumerates the phases of an asynchronous value.
type Status int

const (
	Loading Status = iota
	Failed
	Ready
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Failed:
		return "failed"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// errUnknown stands in for a nil error passed to [Fail].
var errUnknown = errors.New("unknown error")

// State is an immutable snapshot of an asynchronous value. The zero value
// is Loading.
type State[T any] struct {
	status Status
	value  T
	err    error
}

// Pending returns a loading state.
func Pending[T any]() State[T] {
	return State[T]{status: Loading}
}

// Fail returns a failed state carrying err. A nil err is replaced so that a
// failed state always reports a non-nil error.
func Fail[T any](err error) State[T] {
	if err == nil {
		err = errUnknown
	}
	return State[T]{status: Failed, err: err}
}

// Done returns a ready state holding v.
func Done[T any](v T) State[T] {
	return State[T]{status: Ready, value: v}
}

// From builds a state from a conventional (value, error) pair.
func From[T any](v T, err error) State[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Done(v)
}

func (s State[T]) Status() Status  { return s.status }
func (s State[T]) IsLoading() bool { return s.status == Loading }
func (s State[T]) IsFailed() bool  { return s.status == Failed }
func (s State[T]) IsReady() bool   { return s.status == Ready }

// Err returns the failure cause, or nil unless the state is Failed.
func (s State[T]) Err() error {
	return s.err
}

// Value returns the held value and whether the state is Ready.
func (s State[T]) Value() (T, bool) {
	return s.value, s.status == Ready
}
