// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

// addressRepository is the SQL-backed implementation of [AddressRepository].
type addressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAddressRepository constructs an [AddressRepository] backed by the
// provided database connection and logger.
func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

func (r *addressRepository) Count(ctx context.Context, contactID, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountAddressesQuery(r.db.builder, contactID, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*addressRepository.Count").Msg("error counting addresses")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *addressRepository) Create(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAddressQuery(r.db.builder, address)
	if err != nil {
		return models.Address{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAddress(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.Create").Msg("error inserting address")
		return models.Address{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *addressRepository) Find(ctx context.Context, contactID, id int64) (models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAddressQuery(r.db.builder, contactID, id)
	if err != nil {
		return models.Address{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	address, err := scanAddress(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Address{}, ErrNoAddressWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.Find").Msg("error finding address")
		return models.Address{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return address, nil
}

// Update applies the present fields. An update without fields returns the
// stored address unchanged.
func (r *addressRepository) Update(ctx context.Context, update models.AddressUpdate) (models.Address, error) {
	log := logger.FromContext(ctx)

	if update.Street == nil && update.City == nil && update.Province == nil && update.Country == nil && update.PostalCode == nil {
		return r.Find(ctx, update.ContactID, update.ID)
	}

	query, args, err := buildUpdateAddressQuery(r.db.builder, update)
	if err != nil {
		return models.Address{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	address, err := scanAddress(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Address{}, ErrNoAddressWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.Update").Msg("error updating address")
		return models.Address{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return address, nil
}

func (r *addressRepository) Delete(ctx context.Context, contactID, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAddressQuery(r.db.builder, contactID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.Delete").Msg("error deleting address")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoAddressWasFound
	}

	return nil
}

func (r *addressRepository) List(ctx context.Context, contactID int64) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAddressesQuery(r.db.builder, contactID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.List").Msg("error listing addresses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			log.Err(err).Str("func", "*addressRepository.List").Msg("error scanning address")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		addresses = append(addresses, address)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return addresses, nil
}
