// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the credential exchange sent to POST /auth/token as an
// application/x-www-form-urlencoded body.
type LoginRequest struct {
	Email             string `label:"email" validate:"required,email"`
	Password          string `label:"password" validate:"required"`
	DeviceFingerprint string `label:"device fingerprint" validate:"required"`
}

// FormData returns the OAuth2 password-grant form fields.
func (r LoginRequest) FormData() map[string]string {
	return map[string]string{
		"username":           r.Email,
		"password":           r.Password,
		"grant_type":         "password",
		"device_fingerprint": r.DeviceFingerprint,
	}
}

// RegisterRequest is the JSON body of POST /auth/register.
type RegisterRequest struct {
	FirstName         string `json:"first_name" label:"first name" validate:"required"`
	LastName          string `json:"last_name" label:"last name" validate:"required"`
	Email             string `json:"email" label:"email" validate:"required,email"`
	Password          string `json:"password" label:"password" validate:"required,min=8"`
	Tier              Tier   `json:"tier" label:"tier" validate:"required,oneof=free pro business"`
	DeviceFingerprint string `json:"device_fingerprint" label:"device fingerprint" validate:"required"`
}

// EmailRequest carries only an email address (verification helpers).
type EmailRequest struct {
	Email string `json:"email" label:"email" validate:"required,email"`
}
