// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import "errors"

var (
	// ErrMalformedPlatformData indicates that VCAP_APPLICATION or
	// VCAP_SERVICES is not valid JSON of the expected shape.
	ErrMalformedPlatformData = errors.New("malformed platform data")
	// ErrAmbiguousBinding is returned when more than one bound service
	// matches the lookup. No resolution order is assumed.
	ErrAmbiguousBinding = errors.New("more than one matching service binding")
)
