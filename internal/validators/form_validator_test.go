// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pii-sentinel/sentinel-client/models"
)

func validRegister() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Email:             "ada@example.com",
		Password:          "longenough",
		Tier:              models.TierFree,
		DeviceFingerprint: "fp",
	}
}

func TestFormValidator_RegisterValid(t *testing.T) {
	assert.NoError(t, NewFormValidator().Validate(context.Background(), validRegister()))
}

func TestFormValidator_RegisterRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RegisterRequest)
		want   string
	}{
		{"missing first name", func(r *models.RegisterRequest) { r.FirstName = "" }, "first name is required"},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "ada" }, "email must be a valid email"},
		{"short password", func(r *models.RegisterRequest) { r.Password = "short" }, "password must be at least 8 characters"},
		{"unknown tier", func(r *models.RegisterRequest) { r.Tier = "gold" }, "tier must be one of: free, pro, business"},
		{"no fingerprint", func(r *models.RegisterRequest) { r.DeviceFingerprint = "" }, "device fingerprint is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			err := NewFormValidator().Validate(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestFormValidator_MultipleMessagesJoined(t *testing.T) {
	err := NewFormValidator().Validate(context.Background(), models.LoginRequest{DeviceFingerprint: "fp"})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"email is required", "password is required"}, ve.Messages)
	assert.Equal(t, "email is required, password is required", err.Error())
}

func TestFormValidator_PartialFields(t *testing.T) {
	req := models.RegisterRequest{Email: "ada@example.com"}

	err := NewFormValidator().Validate(context.Background(), req, "Email")
	assert.NoError(t, err)
}

func TestFormValidator_ValidateEmail(t *testing.T) {
	fv := NewFormValidator()

	assert.NoError(t, fv.ValidateEmail(context.Background(), "ada@example.com"))

	err := fv.ValidateEmail(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "email must be a valid email", err.Error())
}

func TestFormValidator_NonStruct(t *testing.T) {
	err := NewFormValidator().Validate(context.Background(), 42)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}
