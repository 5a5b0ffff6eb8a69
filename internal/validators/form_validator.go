// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormValidator validates request structs using their `validate` tags.
// Field names in messages come from the `label` tag when present.
type FormValidator struct {
	v *validator.Validate
}

// NewFormValidator returns a ready-to-use [FormValidator].
func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return strings.ToLower(f.Name)
	})
	return &FormValidator{v: v}
}

// Validate implements [Validator].
func (fv *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = fv.v.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = fv.v.StructCtx(ctx, obj)
	}
	return translate(err)
}

// ValidateEmail checks a bare email address.
func (fv *FormValidator) ValidateEmail(ctx context.Context, email string) error {
	err := fv.v.VarCtx(ctx, email, "required,email")
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return &ValidationError{Messages: []string{messageFor("email", ve[0].Tag(), ve[0].Param())}}
	}
	return err
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, messageFor(fe.Field(), fe.Tag(), fe.Param()))
	}
	return &ValidationError{Messages: msgs}
}

func messageFor(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, tag)
	}
}
