// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

var addressRowColumns = []string{"id", "street", "city", "province", "country", "postal_code", "contact_id"}

func newTestAddressRepo(t *testing.T) (*addressRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &addressRepository{db: db, logger: logger.Nop()}, mock
}

func TestAddressRepository_Count(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM addresses WHERE contact_id = \$1 AND id = \$2`).
		WithArgs(int64(3), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.Count(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAddressRepository_Create(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	address := models.Address{ContactID: 3, City: strPtr("Jakarta"), Country: "Indonesia", PostalCode: "10110"}

	mock.ExpectQuery("INSERT INTO addresses").
		WithArgs(nil, "Jakarta", nil, "Indonesia", "10110", int64(3)).
		WillReturnRows(sqlmock.NewRows(addressRowColumns).
			AddRow(5, nil, "Jakarta", nil, "Indonesia", "10110", 3))

	created, err := repo.Create(context.Background(), address)
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, int64(3), created.ContactID)
	assert.Nil(t, created.Street)
	require.NotNil(t, created.City)
	assert.Equal(t, "Jakarta", *created.City)
}

func TestAddressRepository_Create_DBError(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectQuery("INSERT INTO addresses").
		WillReturnError(errors.New("db failure"))

	_, err := repo.Create(context.Background(), models.Address{ContactID: 3, Country: "Indonesia", PostalCode: "10110"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestAddressRepository_Find(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectQuery(`SELECT id, street, city, province, country, postal_code, contact_id FROM addresses WHERE contact_id = \$1 AND id = \$2`).
		WithArgs(int64(3), int64(5)).
		WillReturnRows(sqlmock.NewRows(addressRowColumns).
			AddRow(5, "Jl. Sudirman", nil, nil, "Indonesia", "10110", 3))

	found, err := repo.Find(context.Background(), 3, 5)
	require.NoError(t, err)
	require.NotNil(t, found.Street)
	assert.Equal(t, "Jl. Sudirman", *found.Street)
}

func TestAddressRepository_Find_NotFound(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectQuery("SELECT id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), 3, 99)
	assert.ErrorIs(t, err, ErrNoAddressWasFound)
}

func TestAddressRepository_Update(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	update := models.AddressUpdate{ID: 5, ContactID: 3, Country: strPtr("Malaysia"), PostalCode: strPtr("50000")}

	mock.ExpectQuery(`UPDATE addresses SET country = \$1, postal_code = \$2 WHERE contact_id = \$3 AND id = \$4 RETURNING`).
		WithArgs("Malaysia", "50000", int64(3), int64(5)).
		WillReturnRows(sqlmock.NewRows(addressRowColumns).
			AddRow(5, nil, nil, nil, "Malaysia", "50000", 3))

	updated, err := repo.Update(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, "Malaysia", updated.Country)
	assert.Equal(t, "50000", updated.PostalCode)
}

func TestAddressRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectQuery("UPDATE addresses").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), models.AddressUpdate{ID: 5, ContactID: 3, City: strPtr("Bandung")})
	assert.ErrorIs(t, err, ErrNoAddressWasFound)
}

func TestAddressRepository_Update_NoFieldsReturnsStoredAddress(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(3), int64(5)).
		WillReturnRows(sqlmock.NewRows(addressRowColumns).
			AddRow(5, nil, nil, nil, "Indonesia", "10110", 3))

	found, err := repo.Update(context.Background(), models.AddressUpdate{ID: 5, ContactID: 3})
	require.NoError(t, err)
	assert.Equal(t, "Indonesia", found.Country)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepository_Delete(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectExec(`DELETE FROM addresses WHERE contact_id = \$1 AND id = \$2`).
		WithArgs(int64(3), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 3, 5))
}

func TestAddressRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectExec("DELETE FROM addresses").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3, 5), ErrNoAddressWasFound)
}

func TestAddressRepository_List(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectQuery(`SELECT id, street, city, province, country, postal_code, contact_id FROM addresses WHERE contact_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(addressRowColumns).
			AddRow(5, nil, nil, nil, "Indonesia", "10110", 3).
			AddRow(6, nil, nil, nil, "Malaysia", "50000", 3))

	addresses, err := repo.List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, "Malaysia", addresses[1].Country)
}

func TestAddressRepository_List_Empty(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(addressRowColumns))

	addresses, err := repo.List(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, addresses)
	assert.Empty(t, addresses)
}

func TestAddressRepository_List_QueryError(t *testing.T) {
	repo, mock := newTestAddressRepo(t)

	mock.ExpectQuery("SELECT id").
		WillReturnError(errors.New("db failure"))

	_, err := repo.List(context.Background(), 3)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
