// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

const statusOK = "OK"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterUserRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), &request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, user, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginUserRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.UserService.Login(r.Context(), &request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, token, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	response, err := h.services.UserService.Get(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, response, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var request models.UpdateUserRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.UserService.Update(r.Context(), user, &request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, response, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.Logout(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, statusOK, nil, http.StatusOK) //nolint:errcheck
}
