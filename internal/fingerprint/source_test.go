// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fingerprint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeHost(machineID string, readErr error) *HostSource {
	return &HostSource{
		readFile: func(string) ([]byte, error) {
			if readErr != nil {
				return nil, readErr
			}
			return []byte(machineID + "\n"), nil
		},
		hostname: func() (string, error) { return "box", nil },
		homeDir:  func() (string, error) { return "/home/u", nil },
	}
}

func TestHostSource_Stable(t *testing.T) {
	src := fakeHost("abc", nil)

	a, err := src.Compute(context.Background())
	require.NoError(t, err)
	b, err := src.Compute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestHostSource_MachineIDChangesValue(t *testing.T) {
	a, _ := fakeHost("abc", nil).Compute(context.Background())
	b, _ := fakeHost("xyz", nil).Compute(context.Background())

	assert.NotEqual(t, a, b)
}

func TestHostSource_MissingAttributesStillProduceValue(t *testing.T) {
	src := &HostSource{
		readFile: func(string) ([]byte, error) { return nil, errors.New("nope") },
		hostname: func() (string, error) { return "", errors.New("nope") },
		homeDir:  func() (string, error) { return "", errors.New("nope") },
	}

	v, err := src.Compute(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, v)
}

func TestHostSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHostSource().Compute(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
