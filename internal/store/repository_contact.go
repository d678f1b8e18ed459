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

// contactRepository is the SQL-backed implementation of [ContactRepository].
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) Count(ctx context.Context, username string, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountContactsQuery(r.db.builder, username, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*contactRepository.Count").Msg("error counting contacts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *contactRepository) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertContactQuery(r.db.builder, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Create").Msg("error inserting contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *contactRepository) Find(ctx context.Context, username string, id int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindContactQuery(r.db.builder, username, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrNoContactWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Find").Msg("error finding contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// Update applies the present fields. An update without fields returns the
// stored contact unchanged.
func (r *contactRepository) Update(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if update.FirstName == nil && update.LastName == nil && update.Email == nil && update.Phone == nil {
		return r.Find(ctx, update.Username, update.ID)
	}

	query, args, err := buildUpdateContactQuery(r.db.builder, update)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrNoContactWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Update").Msg("error updating contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// Delete removes the contact and its addresses inside one transaction.
// [ErrNoContactWasFound] is returned, and nothing is removed, when the
// contact does not belong to username.
func (r *contactRepository) Delete(ctx context.Context, username string, id int64) error {
	log := logger.FromContext(ctx)

	addressesQuery, addressesArgs, err := buildDeleteContactAddressesQuery(r.db.builder, username, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	contactQuery, contactArgs, err := buildDeleteContactQuery(r.db.builder, username, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Delete").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, addressesQuery, addressesArgs...); err != nil {
		log.Err(err).Str("func", "*contactRepository.Delete").Msg("error deleting contact addresses")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, contactQuery, contactArgs...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Delete").Msg("error deleting contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoContactWasFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*contactRepository.Delete").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Search runs the count and the page query with the same predicate.
func (r *contactRepository) Search(ctx context.Context, filter models.ContactFilter) ([]models.Contact, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountSearchContactsQuery(r.db.builder, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	pageQuery, pageArgs, err := buildSearchContactsQuery(r.db.builder, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*contactRepository.Search").Msg("error counting matching contacts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Search").Msg("error searching contacts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, filter.Limit)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			log.Err(err).Str("func", "*contactRepository.Search").Msg("error scanning contact")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, contact)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, total, nil
}
