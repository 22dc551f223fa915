// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client of the service registry's
// OAuth2 token endpoint.
//
// The primary abstraction is [TokenAdapter], which decouples the service
// layer from the transport. The package ships an HTTP implementation
// ([NewHTTPTokenAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-discovery-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_adapter_mock.go -package=mock

// TokenAdapter requests access tokens from a registry's token endpoint.
type TokenAdapter interface {
	// RequestToken performs the OAuth2 client credentials grant against
	// tokenURI, authenticating with clientID and clientSecret.
	//
	// The returned token's ExpiresAt is taken from expires_in, or from the
	// JWT exp claim when expires_in is missing. It stays zero when neither
	// is known.
	RequestToken(ctx context.Context, tokenURI, clientID, clientSecret string) (models.Token, error)
}
