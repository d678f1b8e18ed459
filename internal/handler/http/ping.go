// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/utils"
)

// ping reports whether the store is reachable.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ping(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, statusOK, nil, http.StatusOK) //nolint:errcheck
}
