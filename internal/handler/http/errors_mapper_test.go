// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "malformed JSON", err: ErrInvalidJSON, want: http.StatusBadRequest},
		{name: "validation", err: &validators.ValidationError{Violations: []string{"x"}}, want: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("validation failed: %w", &validators.ValidationError{}), want: http.StatusBadRequest},
		{name: "duplicate username", err: service.ErrUsernameAlreadyExists, want: http.StatusBadRequest},
		{name: "wrong credentials", err: service.ErrWrongCredentials, want: http.StatusUnauthorized},
		{name: "invalid session", err: service.ErrInvalidSession, want: http.StatusUnauthorized},
		{name: "contact not found", err: service.ErrContactNotFound, want: http.StatusNotFound},
		{name: "address not found", err: service.ErrAddressNotFound, want: http.StatusNotFound},
		{name: "user not found", err: service.ErrUserNotFound, want: http.StatusNotFound},
		{name: "store failure", err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
