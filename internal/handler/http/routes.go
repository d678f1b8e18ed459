// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every route of the API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/ping", h.ping)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/current", h.getCurrentUser)
		r.Patch("/api/users/current", h.updateCurrentUser)
		r.Delete("/api/users/logout", h.logout)

		r.Post("/api/contacts", h.createContact)
		r.Get("/api/contacts", h.searchContacts)
		r.Get("/api/contacts/{contactId}", h.getContact)
		r.Put("/api/contacts/{contactId}", h.updateContact)
		r.Delete("/api/contacts/{contactId}", h.removeContact)

		r.Post("/api/contacts/{contactId}/addresses", h.createAddress)
		r.Get("/api/contacts/{contactId}/addresses", h.listAddresses)
		r.Get("/api/contacts/{contactId}/addresses/{addressId}", h.getAddress)
		r.Put("/api/contacts/{contactId}/addresses/{addressId}", h.updateAddress)
		r.Delete("/api/contacts/{contactId}/addresses/{addressId}", h.removeAddress)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
