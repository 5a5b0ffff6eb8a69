// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it is sent to the backend.
//
// Rules live in `validate` struct tags on the request types in models and
// are evaluated by go-playground/validator. Failures are reported as a single
// [*ValidationError] whose message lists every broken rule in field order.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to the named struct fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
