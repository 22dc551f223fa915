// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errMissingHandler      = errors.New("server address configured without a handler")
	errListen              = errors.New("error binding listener")
)
