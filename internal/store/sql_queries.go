// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contacts/models"
)

const (
	usersTable     = "users"
	contactsTable  = "contacts"
	addressesTable = "addresses"
)

var (
	userColumns    = []string{"username", "password", "name", "token"}
	contactColumns = []string{"id", "first_name", "last_name", "email", "phone", "username"}
	addressColumns = []string{"id", "street", "city", "province", "country", "postal_code", "contact_id"}
)

// likeEscaper escapes LIKE metacharacters so user filters match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// containsPattern turns a filter value into a LIKE pattern matching any
// string that contains it.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func containsIgnoreCase(column, value string) sq.Sqlizer {
	return sq.Expr("LOWER("+column+") LIKE LOWER(?) ESCAPE '\\'", containsPattern(value))
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCountUsersQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password", "name").
		Values(user.Username, user.Password, user.Name).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	query := b.Update(usersTable).
		Where(sq.Eq{"username": update.Username}).
		Suffix(returning(userColumns))

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Password != nil {
		query = query.Set("password", *update.Password)
	}

	return query.ToSql()
}

func buildSetUserTokenQuery(b sq.StatementBuilderType, username string, token *string) (string, []any, error) {
	var value any
	if token != nil {
		value = *token
	}

	return b.Update(usersTable).
		Set("token", value).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// ── contacts ──────────────────────────────────────────────────────────────────

func buildCountContactsQuery(b sq.StatementBuilderType, username string, id int64) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(contactsTable).
		Where(sq.Eq{"id": id, "username": username}).
		ToSql()
}

func buildInsertContactQuery(b sq.StatementBuilderType, contact models.Contact) (string, []any, error) {
	return b.Insert(contactsTable).
		Columns("first_name", "last_name", "email", "phone", "username").
		Values(contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.Username).
		Suffix(returning(contactColumns)).
		ToSql()
}

func buildFindContactQuery(b sq.StatementBuilderType, username string, id int64) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"id": id, "username": username}).
		ToSql()
}

func buildUpdateContactQuery(b sq.StatementBuilderType, update models.ContactUpdate) (string, []any, error) {
	query := b.Update(contactsTable).
		Where(sq.Eq{"id": update.ID, "username": update.Username}).
		Suffix(returning(contactColumns))

	if update.FirstName != nil {
		query = query.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		query = query.Set("last_name", *update.LastName)
	}
	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.Phone != nil {
		query = query.Set("phone", *update.Phone)
	}

	return query.ToSql()
}

// buildDeleteContactAddressesQuery deletes the addresses of a contact, but
// only if the contact belongs to username.
func buildDeleteContactAddressesQuery(b sq.StatementBuilderType, username string, id int64) (string, []any, error) {
	return b.Delete(addressesTable).
		Where(sq.Expr("contact_id IN (SELECT id FROM "+contactsTable+" WHERE id = ? AND username = ?)", id, username)).
		ToSql()
}

func buildDeleteContactQuery(b sq.StatementBuilderType, username string, id int64) (string, []any, error) {
	return b.Delete(contactsTable).
		Where(sq.Eq{"id": id, "username": username}).
		ToSql()
}

// contactFilterPredicate ANDs the owner with every present filter. A name
// filter matches either the first or the last name.
func contactFilterPredicate(filter models.ContactFilter) sq.And {
	where := sq.And{sq.Eq{"username": filter.Username}}

	if filter.Name != nil {
		where = append(where, sq.Or{
			containsIgnoreCase("first_name", *filter.Name),
			containsIgnoreCase("last_name", *filter.Name),
		})
	}
	if filter.Email != nil {
		where = append(where, containsIgnoreCase("email", *filter.Email))
	}
	if filter.Phone != nil {
		where = append(where, sq.Expr("phone LIKE ? ESCAPE '\\'", containsPattern(*filter.Phone)))
	}

	return where
}

func buildSearchContactsQuery(b sq.StatementBuilderType, filter models.ContactFilter) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		Where(contactFilterPredicate(filter)).
		OrderBy("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSql()
}

func buildCountSearchContactsQuery(b sq.StatementBuilderType, filter models.ContactFilter) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(contactsTable).
		Where(contactFilterPredicate(filter)).
		ToSql()
}

// ── addresses ─────────────────────────────────────────────────────────────────

func buildCountAddressesQuery(b sq.StatementBuilderType, contactID, id int64) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(addressesTable).
		Where(sq.Eq{"id": id, "contact_id": contactID}).
		ToSql()
}

func buildInsertAddressQuery(b sq.StatementBuilderType, address models.Address) (string, []any, error) {
	return b.Insert(addressesTable).
		Columns("street", "city", "province", "country", "postal_code", "contact_id").
		Values(address.Street, address.City, address.Province, address.Country, address.PostalCode, address.ContactID).
		Suffix(returning(addressColumns)).
		ToSql()
}

func buildFindAddressQuery(b sq.StatementBuilderType, contactID, id int64) (string, []any, error) {
	return b.Select(addressColumns...).
		From(addressesTable).
		Where(sq.Eq{"id": id, "contact_id": contactID}).
		ToSql()
}

func buildUpdateAddressQuery(b sq.StatementBuilderType, update models.AddressUpdate) (string, []any, error) {
	query := b.Update(addressesTable).
		Where(sq.Eq{"id": update.ID, "contact_id": update.ContactID}).
		Suffix(returning(addressColumns))

	if update.Street != nil {
		query = query.Set("street", *update.Street)
	}
	if update.City != nil {
		query = query.Set("city", *update.City)
	}
	if update.Province != nil {
		query = query.Set("province", *update.Province)
	}
	if update.Country != nil {
		query = query.Set("country", *update.Country)
	}
	if update.PostalCode != nil {
		query = query.Set("postal_code", *update.PostalCode)
	}

	return query.ToSql()
}

func buildDeleteAddressQuery(b sq.StatementBuilderType, contactID, id int64) (string, []any, error) {
	return b.Delete(addressesTable).
		Where(sq.Eq{"id": id, "contact_id": contactID}).
		ToSql()
}

func buildListAddressesQuery(b sq.StatementBuilderType, contactID int64) (string, []any, error) {
	return b.Select(addressColumns...).
		From(addressesTable).
		Where(sq.Eq{"contact_id": contactID}).
		OrderBy("id ASC").
		ToSql()
}
