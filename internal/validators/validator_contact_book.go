// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

// Field length limits.
const (
	MaxUsernameLength   = 100
	MaxPasswordLength   = 100
	MaxNameLength       = 100
	MaxFirstNameLength  = 100
	MaxLastNameLength   = 100
	MaxEmailLength      = 200
	MaxPhoneLength      = 20
	MaxStreetLength     = 255
	MaxCityLength       = 100
	MaxProvinceLength   = 100
	MaxCountryLength    = 100
	MaxPostalCodeLength = 10
)

// Search paging bounds.
const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// ID is a record identifier taken from a request path. Validate it with an
// optional field name that labels the violation, e.g. "contactId".
type ID int64

// ContactBookValidator implements the Validator interface for every request
// model of the contact book: users, contacts, addresses and path ids.
//
// Request models must be passed by pointer: string fields are trimmed in
// place, blank optional fields are reset to nil and search paging gets its
// defaults. All violations of one input are reported together.
type ContactBookValidator struct {
}

// NewContactBookValidator constructs a new ContactBookValidator
// and returns it as the Validator interface.
func NewContactBookValidator() Validator {
	return &ContactBookValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - *models.RegisterUserRequest, *models.LoginUserRequest, *models.UpdateUserRequest
//   - *models.CreateContactRequest, *models.UpdateContactRequest, *models.SearchContactRequest
//   - *models.CreateAddressRequest, *models.UpdateAddressRequest
//   - ID
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *ContactBookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.RegisterUserRequest:
		return v.validateRegisterUser(value)
	case *models.LoginUserRequest:
		return v.validateLoginUser(value)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(value)
	case *models.CreateContactRequest:
		return v.validateCreateContact(value)
	case *models.UpdateContactRequest:
		return v.validateUpdateContact(value)
	case *models.SearchContactRequest:
		return v.validateSearchContact(value)
	case *models.CreateAddressRequest:
		return v.validateCreateAddress(value)
	case *models.UpdateAddressRequest:
		return v.validateUpdateAddress(value)
	case ID:
		return v.validateID(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ContactBookValidator) validateRegisterUser(request *models.RegisterUserRequest) error {
	var errs violations
	errs.required("username", &request.Username, MaxUsernameLength)
	errs.required("password", &request.Password, MaxPasswordLength)
	errs.required("name", &request.Name, MaxNameLength)

	return errs.err()
}

func (v *ContactBookValidator) validateLoginUser(request *models.LoginUserRequest) error {
	var errs violations
	errs.required("username", &request.Username, MaxUsernameLength)
	errs.required("password", &request.Password, MaxPasswordLength)

	return errs.err()
}

func (v *ContactBookValidator) validateUpdateUser(request *models.UpdateUserRequest) error {
	var errs violations
	errs.required("username", &request.Username, MaxUsernameLength)
	errs.optional("name", &request.Name, MaxNameLength)
	errs.optional("password", &request.Password, MaxPasswordLength)

	return errs.err()
}

func (v *ContactBookValidator) validateCreateContact(request *models.CreateContactRequest) error {
	var errs violations
	errs.required("first_name", &request.FirstName, MaxFirstNameLength)
	errs.optional("last_name", &request.LastName, MaxLastNameLength)
	errs.optional("email", &request.Email, MaxEmailLength)
	errs.email("email", request.Email)
	errs.optional("phone", &request.Phone, MaxPhoneLength)
	errs.digits("phone", request.Phone)

	return errs.err()
}

func (v *ContactBookValidator) validateUpdateContact(request *models.UpdateContactRequest) error {
	var errs violations
	if request.ID <= 0 {
		errs.add("%q must be a positive number", "contactId")
	}
	errs.requiredPtr("first_name", request.FirstName, MaxFirstNameLength)
	errs.optional("last_name", &request.LastName, MaxLastNameLength)
	errs.optional("email", &request.Email, MaxEmailLength)
	errs.email("email", request.Email)
	errs.optional("phone", &request.Phone, MaxPhoneLength)
	errs.digits("phone", request.Phone)

	return errs.err()
}

func (v *ContactBookValidator) validateSearchContact(request *models.SearchContactRequest) error {
	var errs violations
	errs.optional("name", &request.Name, MaxNameLength)
	errs.optional("email", &request.Email, MaxEmailLength)
	errs.optional("phone", &request.Phone, MaxPhoneLength)

	if request.Page == nil {
		page := DefaultPage
		request.Page = &page
	}
	if request.Size == nil {
		size := DefaultSize
		request.Size = &size
	}

	if *request.Page < 1 {
		errs.add("%q must be greater than or equal to 1", "page")
	}
	if *request.Size < 1 {
		errs.add("%q must be greater than or equal to 1", "size")
	}
	if *request.Size > MaxSize {
		errs.add("%q must be less than or equal to %d", "size", MaxSize)
	}

	return errs.err()
}

func (v *ContactBookValidator) validateCreateAddress(request *models.CreateAddressRequest) error {
	var errs violations
	errs.optional("street", &request.Street, MaxStreetLength)
	errs.optional("city", &request.City, MaxCityLength)
	errs.optional("province", &request.Province, MaxProvinceLength)
	errs.required("country", &request.Country, MaxCountryLength)
	errs.required("postal_code", &request.PostalCode, MaxPostalCodeLength)

	return errs.err()
}

func (v *ContactBookValidator) validateUpdateAddress(request *models.UpdateAddressRequest) error {
	var errs violations
	if request.ID <= 0 {
		errs.add("%q must be a positive number", "addressId")
	}
	errs.optional("street", &request.Street, MaxStreetLength)
	errs.optional("city", &request.City, MaxCityLength)
	errs.optional("province", &request.Province, MaxProvinceLength)
	errs.requiredPtr("country", request.Country, MaxCountryLength)
	errs.requiredPtr("postal_code", request.PostalCode, MaxPostalCodeLength)

	return errs.err()
}

func (v *ContactBookValidator) validateID(id ID, fields ...string) error {
	if len(fields) > 1 {
		return ErrUnknownField
	}

	field := "id"
	if len(fields) == 1 {
		field = fields[0]
	}

	var errs violations
	if id <= 0 {
		errs.add("%q must be a positive number", field)
	}

	return errs.err()
}
