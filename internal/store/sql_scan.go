// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-contacts/models"
)

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.Username, &user.Password, &user.Name, &user.Token)
	return user, err
}

func scanContact(row rowScanner) (models.Contact, error) {
	var contact models.Contact
	err := row.Scan(&contact.ID, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone, &contact.Username)
	return contact, err
}

func scanAddress(row rowScanner) (models.Address, error) {
	var address models.Address
	err := row.Scan(&address.ID, &address.Street, &address.City, &address.Province, &address.Country, &address.PostalCode, &address.ContactID)
	return address, err
}
