// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/go-chi/chi/v5"
)

// decodeJSON reads the request body into v. The decoder error is logged and
// replaced by [ErrInvalidJSON].
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("error decoding request body")
		return ErrInvalidJSON
	}

	return nil
}

// pathID returns the numeric URL parameter key. A missing or malformed
// value yields 0, which the validators reject as not positive.
func pathID(r *http.Request, key string) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil {
		return 0
	}

	return id
}

// queryString returns the query parameter key, or nil if it is absent.
func queryString(r *http.Request, key string) *string {
	query := r.URL.Query()
	if !query.Has(key) {
		return nil
	}

	value := query.Get(key)
	return &value
}

// queryInt returns the integer query parameter key, or nil if it is absent.
func queryInt(r *http.Request, key string) (*int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, &validators.ValidationError{Violations: []string{fmt.Sprintf("%q must be a number", key)}}
	}

	return &n, nil
}
