// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing primitive used by the user
// service. Session tokens are minted in package utils.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against them. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch returns
	// [ErrPasswordMismatch]; any other error means the hash is malformed.
	Compare(hash, password string) error
}
