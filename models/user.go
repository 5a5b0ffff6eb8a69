// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SessionUser is the authenticated identity returned by GET /protected/me.
// It is read-only on the client and replaced wholesale on every fetch.
type SessionUser struct {
	// ID is the backend user identifier (the token subject).
	ID UserID `json:"user_id"`

	// DisplayName is the human readable name shown in the dashboard header.
	DisplayName string `json:"name"`

	// DeviceToken is the device binding token embedded in the credential.
	DeviceToken string `json:"device_token"`

	// Tier is the subscription level. The /protected/me endpoint may omit it,
	// in which case the resolver fills it from the credential claims.
	Tier Tier `json:"tier,omitempty"`

	// RefreshedAccessToken is the sliding-session token the backend returns
	// alongside the identity. The client surfaces it but never stores it.
	RefreshedAccessToken string `json:"refreshed_access_token,omitempty"`
}

// UserID accepts both JSON strings and numbers, since the backend emits
// whichever type its token subject happens to have.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = UserID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = UserID(n.String())
	return nil
}

// IsZero reports whether u carries no identity at all.
func (u SessionUser) IsZero() bool {
	return u.ID == "" && u.DisplayName == "" && u.DeviceToken == ""
}
