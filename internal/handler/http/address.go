// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var request models.CreateAddressRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	address, err := h.services.AddressService.Create(r.Context(), user, pathID(r, "contactId"), &request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, address, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	address, err := h.services.AddressService.Get(r.Context(), user, pathID(r, "contactId"), pathID(r, "addressId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, address, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var request models.UpdateAddressRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.ID = pathID(r, "addressId")

	address, err := h.services.AddressService.Update(r.Context(), user, pathID(r, "contactId"), &request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, address, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) removeAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	err := h.services.AddressService.Remove(r.Context(), user, pathID(r, "contactId"), pathID(r, "addressId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, statusOK, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	addresses, err := h.services.AddressService.List(r.Context(), user, pathID(r, "contactId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if addresses == nil {
		addresses = []models.Address{}
	}

	utils.WriteData(w, addresses, nil, http.StatusOK) //nolint:errcheck
}
