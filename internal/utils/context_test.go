// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "session", SessionCtxKey.String())
}

func TestGetSessionFromContext(t *testing.T) {
	want := models.SessionContext{Token: "tok", UserID: 1, Username: "alice"}

	got, ok := GetSessionFromContext(WithSession(context.Background(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "alice")

	_, ok := GetSessionFromContext(ctx)
	assert.False(t, ok)
}

func TestGetSessionFromContext_Unauthenticated(t *testing.T) {
	ctx := WithSession(context.Background(), models.SessionContext{Username: "alice"})

	_, ok := GetSessionFromContext(ctx)
	assert.False(t, ok)
}
