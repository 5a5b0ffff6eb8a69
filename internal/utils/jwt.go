// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialClaims is the subset of credential claims the client inspects.
// The signature is never verified on the client; these values are hints
// for UX (tier badge, early expiry detection) and never an access decision.
type CredentialClaims struct {
	Subject   string
	Tier      string
	ExpiresAt time.Time
}

// Expired reports whether the claims carry an expiry that is not after now.
// A token without an exp claim never expires on the client side.
func (c CredentialClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseCredentialClaims decodes the payload of a JWT without verifying it.
//
// Returns an error if the token is not a well-formed JWT. Missing claims are
// left at their zero value.
func ParseCredentialClaims(tokenString string) (CredentialClaims, error) {
	if tokenString == "" {
		return CredentialClaims{}, errors.New("empty token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return CredentialClaims{}, fmt.Errorf("error occurred parsing token claims: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return CredentialClaims{}, errors.New("invalid token claims")
	}

	var out CredentialClaims
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	if tier, ok := claims["tier"].(string); ok {
		out.Tier = tier
	}

	return out, nil
}
