// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

// ErrInvalidInput matches every [*ValidationError].
var ErrInvalidInput = errors.New("invalid input")

// ValidationError lists the human-readable problems found in one value.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
