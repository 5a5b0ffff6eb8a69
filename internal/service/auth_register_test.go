// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/metrics"
	"github.com/pii-sentinel/sentinel-client/internal/mock"
	"github.com/pii-sentinel/sentinel-client/internal/validators"
	"github.com/pii-sentinel/sentinel-client/models"
)

func newTestRegisterFlow(t *testing.T, ctrl *gomock.Controller, fp Fingerprint) (*RegisterFlow, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewRegisterFlow(mockAdapter, fp, validators.NewFormValidator(), metrics.Nop{}, logger.Nop()), mockAdapter
}

func validRegisterForm() RegisterForm {
	return RegisterForm{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     " Ada@Example.com",
		Password:  "long-enough",
	}
}

func TestRegisterFlow_FingerprintNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, _ := newTestRegisterFlow(t, ctrl, &stubFingerprint{})

	msg, err := flow.Register(context.Background(), validRegisterForm())
	require.ErrorIs(t, err, ErrFingerprintNotReady)
	assert.Empty(t, msg)
	assert.Equal(t, FlowIdle, flow.State())
}

func TestRegisterFlow_Success_DefaultsTierToFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, mockAdapter := newTestRegisterFlow(t, ctrl, &stubFingerprint{v: "fp-9"})

	mockAdapter.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{
			FirstName:         "Ada",
			LastName:          "Lovelace",
			Email:             "ada@example.com",
			Password:          "long-enough",
			Tier:              models.TierFree,
			DeviceFingerprint: "fp-9",
		}).
		Return("Check your inbox", nil)

	msg, err := flow.Register(context.Background(), validRegisterForm())
	require.NoError(t, err)
	assert.Equal(t, "Check your inbox", msg)
	assert.Equal(t, FlowSucceeded, flow.State())
}

func TestRegisterFlow_TierIsNormalised(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, mockAdapter := newTestRegisterFlow(t, ctrl, &stubFingerprint{v: "fp"})

	mockAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.RegisterRequest) (string, error) {
			assert.Equal(t, models.TierBusiness, req.Tier)
			return "", nil
		})

	form := validRegisterForm()
	form.Tier = " Business "
	msg, err := flow.Register(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, DefaultRegisterMessage, msg)
}

func TestRegisterFlow_UnknownTierRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, _ := newTestRegisterFlow(t, ctrl, &stubFingerprint{v: "fp"})

	form := validRegisterForm()
	form.Tier = "enterprise"
	_, err := flow.Register(context.Background(), form)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "tier must be one of: free, pro, business")
}

func TestRegisterFlow_ShortPasswordRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, _ := newTestRegisterFlow(t, ctrl, &stubFingerprint{v: "fp"})

	form := validRegisterForm()
	form.Password = "short"
	_, err := flow.Register(context.Background(), form)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "password must be at least 8 characters")
}

func TestRegisterFlow_ServerValidationMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, mockAdapter := newTestRegisterFlow(t, ctrl, &stubFingerprint{v: "fp"})

	mockAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return("", adapter.NewStatusError(422, "a, b"))

	_, err := flow.Register(context.Background(), validRegisterForm())
	var se *adapter.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 422, se.Code)
	assert.Equal(t, "a, b", se.Message)
	assert.Equal(t, FlowFailed, flow.State())
}

func TestNormalizeTier(t *testing.T) {
	tests := []struct {
		in   string
		want models.Tier
	}{
		{"", models.TierFree},
		{"  ", models.TierFree},
		{"PRO", models.TierPro},
		{"other", models.Tier("other")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeTier(tt.in))
		})
	}
}
