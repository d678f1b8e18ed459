// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var request models.CreateContactRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Create(r.Context(), user, &request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, contact, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), user, pathID(r, "contactId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, contact, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var request models.UpdateContactRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.ID = pathID(r, "contactId")

	contact, err := h.services.ContactService.Update(r.Context(), user, &request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, contact, nil, http.StatusOK) //nolint:errcheck
}

func (h *Handler) removeContact(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	if err := h.services.ContactService.Remove(r.Context(), user, pathID(r, "contactId")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, statusOK, nil, http.StatusOK) //nolint:errcheck
}

// searchContacts reads the filters name, email and phone and the paging
// parameters page and size from the query string.
func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	request := models.SearchContactRequest{
		Name:  queryString(r, "name"),
		Email: queryString(r, "email"),
		Phone: queryString(r, "phone"),
	}

	var err error
	if request.Page, err = queryInt(r, "page"); err != nil {
		writeError(w, r, err)
		return
	}
	if request.Size, err = queryInt(r, "size"); err != nil {
		writeError(w, r, err)
		return
	}

	contacts, paging, err := h.services.ContactService.Search(r.Context(), user, &request)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	utils.WriteData(w, contacts, &paging, http.StatusOK) //nolint:errcheck
}
