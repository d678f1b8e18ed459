// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-contacts/internal/validators"
)

// Error kinds. Every error returned by a service either unwraps to one of
// these kinds or is unexpected.
var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = validators.ErrValidation
	// ErrUnauthenticated marks a missing, unknown or revoked session.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound marks a record that does not exist or is not owned by the actor.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate unique key.
	ErrConflict = errors.New("conflict")
)

// domainError carries the message shown to clients and the kind it belongs to.
type domainError struct {
	kind    error
	message string
}

func (e *domainError) Error() string {
	return e.message
}

func (e *domainError) Unwrap() error {
	return e.kind
}

var (
	ErrUserNotFound          error = &domainError{kind: ErrNotFound, message: "User is not found"}
	ErrContactNotFound       error = &domainError{kind: ErrNotFound, message: "Contact is not found"}
	ErrAddressNotFound       error = &domainError{kind: ErrNotFound, message: "Address is not found"}
	ErrUsernameAlreadyExists error = &domainError{kind: ErrConflict, message: "Username already exists"}
	ErrWrongCredentials      error = &domainError{kind: ErrUnauthenticated, message: "Username or password is wrong"}
	ErrInvalidSession        error = &domainError{kind: ErrUnauthenticated, message: "Unauthorized"}
)

// Message returns the text shown to clients for err: the message of the
// domain error it wraps, or err's own text otherwise.
func Message(err error) string {
	var de *domainError
	if errors.As(err, &de) {
		return de.message
	}

	return err.Error()
}
