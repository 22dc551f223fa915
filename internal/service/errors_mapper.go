// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-discovery-config/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error, keeping the original in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	case errors.Is(err, adapter.ErrEmptyTokenURI), errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrTokenEndpointConfig, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenEndpoint, err)
	}
}
