// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is an OAuth2 access token obtained with the client credentials of a
// bound service registry.
type Token struct {
	// AccessToken is the bearer value. It is never serialized.
	AccessToken string `json:"-"`

	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ValidAt reports whether the token is still usable at t with the given
// safety margin before expiry. A token without a known expiry is always valid.
func (t Token) ValidAt(at time.Time, margin time.Duration) bool {
	if t.AccessToken == "" {
		return false
	}
	if t.ExpiresAt.IsZero() {
		return true
	}
	return at.Add(margin).Before(t.ExpiresAt)
}

// String returns the bearer value.
func (t Token) String() string {
	return t.AccessToken
}
