// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	service.ErrValidation:      http.StatusBadRequest,
	service.ErrConflict:        http.StatusBadRequest,
	service.ErrUnauthenticated: http.StatusUnauthorized,
	service.ErrNotFound:        http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes the matching failure envelope. Validation
// errors list every violation, unexpected errors hide their details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var validationErr *validators.ValidationError
	switch {
	case status == http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error")
		utils.WriteErrors(w, http.StatusText(status), status) //nolint:errcheck
	case errors.As(err, &validationErr):
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		utils.WriteErrors(w, validationErr.Violations, status) //nolint:errcheck
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		utils.WriteErrors(w, service.Message(err), status) //nolint:errcheck
	}
}
