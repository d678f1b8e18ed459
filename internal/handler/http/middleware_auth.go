// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

// auth is an HTTP middleware that resolves the session token of the request
// to its user.
//
// The token is read from the "Authorization" header, either raw or in the
// "Bearer <token>" form, and checked with [service.UserService.Authenticate].
// On success the user is stored in the request context (see
// [utils.WithUser]). A missing, unknown or revoked token is answered with
// 401 and {"errors":"Unauthorized"}.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := utils.ParseAuthorizationHeader(r.Header.Get("Authorization"))
		if !ok {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidSession, ErrEmptyAuthorizationHeader))
			return
		}

		ctx := r.Context()
		user, err := h.services.UserService.Authenticate(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// actor returns the authenticated user of r. It writes 401 and reports false
// when the request did not pass through [Handler.auth].
func actor(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidSession)
	}

	return user, ok
}
