// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrUnknownPage is returned when a handler asks for a template that
	// was not parsed at startup.
	ErrUnknownPage = errors.New("unknown page template")

	// ErrNoSessionInContext is logged when a guarded handler runs without
	// the session the guard middleware stores.
	ErrNoSessionInContext = errors.New("no session in request context")
)
