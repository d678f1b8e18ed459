// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact is an entry of a user's contact book.
// Every contact belongs to exactly one user (Username).
type Contact struct {
	ID int64 `json:"id"`

	// Username is the owner of the contact. It is never serialized: ownership
	// is implied by the authenticated request.
	Username string `json:"-"`

	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// CreateContactRequest is the payload of POST /api/contacts.
type CreateContactRequest struct {
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// UpdateContactRequest describes a partial update of a contact.
// Nil fields are left unchanged; a present FirstName must not be blank.
type UpdateContactRequest struct {
	// ID is taken from the URL path.
	ID int64 `json:"-"`

	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ContactUpdate is the set of contact columns the store is asked to change.
// The row is matched by both ID and Username.
type ContactUpdate struct {
	ID       int64
	Username string

	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// SearchContactRequest holds the filters and paging of GET /api/contacts.
type SearchContactRequest struct {
	// Name matches either first or last name (case-insensitive substring).
	Name *string
	// Email is a case-insensitive substring filter.
	Email *string
	// Phone is a substring filter.
	Phone *string

	// Page and Size are nil when the query string omits them.
	Page *int
	Size *int
}

// ContactFilter is the normalized search predicate passed to the store.
type ContactFilter struct {
	Username string
	Name     *string
	Email    *string
	Phone    *string

	Offset uint64
	Limit  uint64
}
