// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "errors"

var (
	// ErrUnsupportedFormat is returned for settings files whose extension is
	// neither .json, .yaml nor .yml.
	ErrUnsupportedFormat = errors.New("unsupported settings file format")
	// ErrReadSettings wraps failures to open or read a settings file.
	ErrReadSettings = errors.New("error reading settings file")
	// ErrDecodeSettings wraps failures to decode a settings file.
	ErrDecodeSettings = errors.New("error decoding settings file")
	// ErrEnvSettings wraps failures to apply EUREKA_* environment variables.
	ErrEnvSettings = errors.New("error applying settings from env")
)
