// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks untrusted form input before it reaches the
// credential store.
//
// Validation is fail-fast: only the first violated rule is reported, and rules
// are evaluated in form order (username, email, password, confirmation).
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator validates the provided input and returns a *FieldError describing
// the first violation, or nil.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
