// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no server address
// is configured. Callers only build handlers when a server is wanted, so this
// is a wiring mistake.
var errNoHandlersAreCreated = errors.New("no handlers are created")
