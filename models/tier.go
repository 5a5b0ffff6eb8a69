// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Tier is the subscription level selected at registration.
type Tier string

const (
	TierFree     Tier = "free"
	TierPro      Tier = "pro"
	TierBusiness Tier = "business"
)

// DefaultTier is used when the user does not pick a tier explicitly.
const DefaultTier = TierFree

// Tiers lists every valid tier in display order.
func Tiers() []Tier {
	return []Tier{TierFree, TierPro, TierBusiness}
}

// ParseTier converts a user-supplied value into a [Tier]. An empty value
// yields [DefaultTier]; anything outside the closed set is rejected.
func ParseTier(raw string) (Tier, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return DefaultTier, nil
	}
	for _, t := range Tiers() {
		if string(t) == v {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tier %q", raw)
}

// Label returns a capitalised name for menus.
func (t Tier) Label() string {
	switch t {
	case TierPro:
		return "Pro"
	case TierBusiness:
		return "Business"
	default:
		return "Free"
	}
}
