// Package http implements the REST transport of the contact book.
//
// Every response is a JSON envelope: {"data": ...} on success, optionally
// followed by a "paging" block, and {"errors": ...} on failure. Routes under
// /api/users/current, /api/users/logout and /api/contacts require the session
// token issued by login in the Authorization header.
package http
