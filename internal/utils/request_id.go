// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader is the header used to correlate client calls with backend logs.
const RequestIDHeader = "X-Request-ID"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the context key holding the request identifier.
var RequestIDCtxKey = contextKey("requestID")

// NewRequestID returns a time-ordered UUIDv7, falling back to a random
// UUIDv4 if the clock source fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// WithRequestID stores id in ctx so that every request made with the
// returned context reuses it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// RequestIDFromContext returns the request identifier stored in ctx.
// ok is false when the value is missing, empty or of an unexpected type.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
