// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func violationsOf(t *testing.T, err error) []string {
	t.Helper()

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.ErrorIs(t, err, ErrValidation)

	return validationErr.Violations
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewContactBookValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("value instead of pointer", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.CreateContactRequest{FirstName: "x"}), ErrUnsupportedType)
	})

	t.Run("ID with too many fields", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, ID(1), "a", "b"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestValidate_RegisterUser(t *testing.T) {
	v := NewContactBookValidator()
	ctx := context.Background()

	t.Run("valid input is trimmed", func(t *testing.T) {
		req := &models.RegisterUserRequest{Username: "  test ", Password: "rahasia", Name: " Test "}
		require.NoError(t, v.Validate(ctx, req))
		assert.Equal(t, "test", req.Username)
		assert.Equal(t, "Test", req.Name)
	})

	t.Run("all violations are collected", func(t *testing.T) {
		req := &models.RegisterUserRequest{Username: "", Password: " ", Name: ""}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Len(t, got, 3)
		assert.Contains(t, got, `"username" is required`)
		assert.Contains(t, got, `"password" is required`)
		assert.Contains(t, got, `"name" is required`)
	})

	t.Run("too long username", func(t *testing.T) {
		req := &models.RegisterUserRequest{Username: strings.Repeat("u", MaxUsernameLength+1), Password: "p", Name: "n"}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Equal(t, []string{`"username" length must be less than or equal to 100 characters long`}, got)
	})

	t.Run("limit counts characters not bytes", func(t *testing.T) {
		req := &models.RegisterUserRequest{Username: strings.Repeat("ж", MaxUsernameLength), Password: "p", Name: "n"}
		require.NoError(t, v.Validate(ctx, req))
	})
}

func TestValidate_LoginUser(t *testing.T) {
	v := NewContactBookValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, &models.LoginUserRequest{Username: "test", Password: "rahasia"}))

	got := violationsOf(t, v.Validate(ctx, &models.LoginUserRequest{}))
	assert.Len(t, got, 2)
}

func TestValidate_UpdateUser(t *testing.T) {
	v := NewContactBookValidator()
	ctx := context.Background()

	t.Run("blank optional fields become absent", func(t *testing.T) {
		req := &models.UpdateUserRequest{Username: "test", Name: ptr("  "), Password: ptr("")}
		require.NoError(t, v.Validate(ctx, req))
		assert.Nil(t, req.Name)
		assert.Nil(t, req.Password)
	})

	t.Run("present fields are trimmed", func(t *testing.T) {
		req := &models.UpdateUserRequest{Username: "test", Name: ptr(" New ")}
		require.NoError(t, v.Validate(ctx, req))
		require.NotNil(t, req.Name)
		assert.Equal(t, "New", *req.Name)
	})

	t.Run("too long name", func(t *testing.T) {
		req := &models.UpdateUserRequest{Username: "test", Name: ptr(strings.Repeat("n", 101))}
		violationsOf(t, v.Validate(ctx, req))
	})
}

// ---------------------------------------------------------------------------
// Contacts
// ---------------------------------------------------------------------------

func TestValidate_CreateContact(t *testing.T) {
	v := NewContactBookValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.CreateContactRequest
		wantErr []string
	}{
		{
			name: "full contact",
			req:  models.CreateContactRequest{FirstName: "test", LastName: ptr("test"), Email: ptr("test@pzn.com"), Phone: ptr("080900000")},
		},
		{
			name: "first name only",
			req:  models.CreateContactRequest{FirstName: "test"},
		},
		{
			name:    "missing first name",
			req:     models.CreateContactRequest{LastName: ptr("test")},
			wantErr: []string{`"first_name" is required`},
		},
		{
			name:    "invalid email",
			req:     models.CreateContactRequest{FirstName: "test", Email: ptr("salah")},
			wantErr: []string{`"email" must be a valid email`},
		},
		{
			name:    "display name email",
			req:     models.CreateContactRequest{FirstName: "test", Email: ptr("Test <test@pzn.com>")},
			wantErr: []string{`"email" must be a valid email`},
		},
		{
			name:    "non digit phone",
			req:     models.CreateContactRequest{FirstName: "test", Phone: ptr("08-09")},
			wantErr: []string{`"phone" must only contain digits`},
		},
		{
			name: "too long phone",
			req:  models.CreateContactRequest{FirstName: "test", Phone: ptr(strings.Repeat("0", MaxPhoneLength+1))},
			wantErr: []string{
				`"phone" length must be less than or equal to 20 characters long`,
			},
		},
		{
			name: "several violations",
			req:  models.CreateContactRequest{FirstName: "", Email: ptr("salah"), Phone: ptr("abc")},
			wantErr: []string{
				`"first_name" is required`,
				`"email" must be a valid email`,
				`"phone" must only contain digits`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := v.Validate(ctx, &req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, violationsOf(t, err))
		})
	}
}

func TestValidate_CreateContact_Normalizes(t *testing.T) {
	v := NewContactBookValidator()

	req := &models.CreateContactRequest{FirstName: " test ", LastName: ptr(" "), Email: ptr(" test@pzn.com ")}
	require.NoError(t, v.Validate(context.Background(), req))

	assert.Equal(t, "test", req.FirstName)
	assert.Nil(t, req.LastName)
	require.NotNil(t, req.Email)
	assert.Equal(t, "test@pzn.com", *req.Email)
}

func TestValidate_UpdateContact(t *testing.T) {
	v := NewContactBookValidator()
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		req := &models.UpdateContactRequest{ID: 1, Phone: ptr("0809")}
		require.NoError(t, v.Validate(ctx, req))
	})

	t.Run("invalid id", func(t *testing.T) {
		req := &models.UpdateContactRequest{ID: 0, FirstName: ptr("test")}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Equal(t, []string{`"contactId" must be a positive number`}, got)
	})

	t.Run("blank first name", func(t *testing.T) {
		req := &models.UpdateContactRequest{ID: 1, FirstName: ptr(" ")}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Equal(t, []string{`"first_name" is required`}, got)
	})

	t.Run("first name is trimmed", func(t *testing.T) {
		req := &models.UpdateContactRequest{ID: 1, FirstName: ptr(" Eko ")}
		require.NoError(t, v.Validate(ctx, req))
		assert.Equal(t, "Eko", *req.FirstName)
	})
}

func TestValidate_SearchContact(t *testing.T) {
	v := NewContactBookValidator()
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		req := &models.SearchContactRequest{}
		require.NoError(t, v.Validate(ctx, req))
		require.NotNil(t, req.Page)
		require.NotNil(t, req.Size)
		assert.Equal(t, DefaultPage, *req.Page)
		assert.Equal(t, DefaultSize, *req.Size)
	})

	t.Run("blank filters are dropped", func(t *testing.T) {
		req := &models.SearchContactRequest{Name: ptr(" "), Email: ptr("")}
		require.NoError(t, v.Validate(ctx, req))
		assert.Nil(t, req.Name)
		assert.Nil(t, req.Email)
	})

	t.Run("size too large", func(t *testing.T) {
		req := &models.SearchContactRequest{Page: intPtr(1), Size: intPtr(MaxSize + 1)}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Equal(t, []string{`"size" must be less than or equal to 100`}, got)
	})

	t.Run("negative page", func(t *testing.T) {
		req := &models.SearchContactRequest{Page: intPtr(-1), Size: intPtr(10)}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Equal(t, []string{`"page" must be greater than or equal to 1`}, got)
	})

	t.Run("explicit zero page and size are rejected", func(t *testing.T) {
		req := &models.SearchContactRequest{Page: intPtr(0), Size: intPtr(0)}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Equal(t, []string{
			`"page" must be greater than or equal to 1`,
			`"size" must be greater than or equal to 1`,
		}, got)
	})

	t.Run("huge page is accepted", func(t *testing.T) {
		req := &models.SearchContactRequest{Page: intPtr(math.MaxInt), Size: intPtr(MaxSize)}
		require.NoError(t, v.Validate(ctx, req))
	})
}

// ---------------------------------------------------------------------------
// Addresses
// ---------------------------------------------------------------------------

func TestValidate_CreateAddress(t *testing.T) {
	v := NewContactBookValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		req := &models.CreateAddressRequest{Street: ptr("jalan test"), City: ptr("kota test"), Province: ptr("provinsi test"), Country: "indonesia", PostalCode: "234234"}
		require.NoError(t, v.Validate(ctx, req))
	})

	t.Run("missing required fields", func(t *testing.T) {
		req := &models.CreateAddressRequest{Street: ptr("jalan test")}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Equal(t, []string{`"country" is required`, `"postal_code" is required`}, got)
	})

	t.Run("too long postal code", func(t *testing.T) {
		req := &models.CreateAddressRequest{Country: "indonesia", PostalCode: "12345678901"}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Equal(t, []string{`"postal_code" length must be less than or equal to 10 characters long`}, got)
	})
}

func TestValidate_UpdateAddress(t *testing.T) {
	v := NewContactBookValidator()
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		req := &models.UpdateAddressRequest{ID: 3, City: ptr("Bandung")}
		require.NoError(t, v.Validate(ctx, req))
	})

	t.Run("blank required field", func(t *testing.T) {
		req := &models.UpdateAddressRequest{ID: 3, Country: ptr(""), PostalCode: ptr(" ")}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Equal(t, []string{`"country" is required`, `"postal_code" is required`}, got)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := &models.UpdateAddressRequest{ID: -1}
		got := violationsOf(t, v.Validate(ctx, req))
		assert.Equal(t, []string{`"addressId" must be a positive number`}, got)
	})
}

// ---------------------------------------------------------------------------
// IDs
// ---------------------------------------------------------------------------

func TestValidate_ID(t *testing.T) {
	v := NewContactBookValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, ID(1)))

	got := violationsOf(t, v.Validate(ctx, ID(0)))
	assert.Equal(t, []string{`"id" must be a positive number`}, got)

	got = violationsOf(t, v.Validate(ctx, ID(-5), "contactId"))
	assert.Equal(t, []string{`"contactId" must be a positive number`}, got)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Violations: []string{"a", "b"}}
	assert.Equal(t, "a; b", err.Error())
}
