// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-contacts/models"
	"github.com/golang-jwt/jwt/v5"
)

const bearerScheme = "Bearer"

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following standard claims:
//   - Issuer   (iss): identifies the service that issued the token
//   - Subject  (sub): the username the session belongs to
//   - IssuedAt (iat): the current time
//   - ID       (jti): a unique value, so two logins never mint the same token
//
// The token carries no expiry: a session ends only on logout or the next
// login. The server never re-verifies the claims, it compares the whole
// signed string against the stored one.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("go-contacts", "alice", id, "secret")
func GenerateSessionToken(issuer, username, tokenID, signKey string) (models.SessionToken, error) {
	if issuer == "" || username == "" || tokenID == "" || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  username,
		ID:       tokenID,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{RegisteredClaims: claims, SignedString: signed}, nil
}

// ParseAuthorizationHeader extracts the session token from an Authorization
// header value. Both the raw token and the "Bearer <token>" form are accepted.
// It returns false when no token is present.
func ParseAuthorizationHeader(header string) (string, bool) {
	token := strings.TrimSpace(header)
	if scheme, rest, found := strings.Cut(token, " "); found && strings.EqualFold(scheme, bearerScheme) {
		token = strings.TrimSpace(rest)
	} else if strings.EqualFold(token, bearerScheme) {
		token = ""
	}

	if token == "" {
		return "", false
	}

	return token, true
}
