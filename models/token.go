// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is a freshly minted session credential.
//
// The compact JWS form (SignedString) is what gets stored in the users table
// and handed to the client. The server treats it as an opaque bearer string:
// requests are authenticated by equality lookup, never by re-verifying claims.
type SessionToken struct {
	// RegisteredClaims carries sub (username), iat, iss and a unique jti.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t SessionToken) String() string {
	return t.SignedString
}
