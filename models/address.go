// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Address is a postal address attached to a contact.
// Addresses have no direct relation to users; ownership is always derived
// through ContactID.
type Address struct {
	ID        int64 `json:"id"`
	ContactID int64 `json:"-"`

	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}

// CreateAddressRequest is the payload of POST /api/contacts/{contactId}/addresses.
type CreateAddressRequest struct {
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

// UpdateAddressRequest describes a partial update of an address.
// Nil fields are left unchanged; a present Country or PostalCode must not be blank.
type UpdateAddressRequest struct {
	// ID is taken from the URL path.
	ID int64 `json:"-"`

	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
}

// AddressUpdate is the set of address columns the store is asked to change.
// The row is matched by both ID and ContactID.
type AddressUpdate struct {
	ID        int64
	ContactID int64

	Street     *string
	City       *string
	Province   *string
	Country    *string
	PostalCode *string
}
