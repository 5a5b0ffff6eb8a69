// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestNewRequestID_IsUUID(t *testing.T) {
	id := NewRequestID()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestRequestIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{"set", WithRequestID(context.Background(), "abc"), "abc", true},
		{"missing", context.Background(), "", false},
		{"empty", WithRequestID(context.Background(), ""), "", false},
		{"wrong type", context.WithValue(context.Background(), RequestIDCtxKey, 42), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := RequestIDFromContext(tt.ctx)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("got (%q, %v), want (%q, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
