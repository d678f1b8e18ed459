// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account that owns contacts.
// Sensitive fields must never be exposed outside trusted boundaries;
// use [User.Response] to build the public projection.
type User struct {
	// Username is the unique and immutable user identifier.
	Username string `json:"username"`

	// Password holds the bcrypt digest of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Token is the current session token. Nil when the user is logged out.
	Token *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Response returns the projection of u that is safe to send to clients.
func (u User) Response() UserResponse {
	return UserResponse{
		Username: u.Username,
		Name:     u.Name,
	}
}

// UserResponse is the public projection of a [User].
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterUserRequest is the payload of POST /api/users.
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginUserRequest is the payload of POST /api/users/login.
type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest describes a partial update of the current user.
// Only non-nil fields are applied.
type UpdateUserRequest struct {
	// Username identifies the user being updated. It is taken from the
	// authenticated actor, never from the request body.
	Username string `json:"-"`

	// Name is the new display name. If nil, the name is kept.
	Name *string `json:"name,omitempty"`

	// Password is the new plain-text password. If nil, the stored hash is kept;
	// otherwise it is re-hashed before storage.
	Password *string `json:"password,omitempty"`
}

// UserUpdate is the set of user columns the store is asked to change.
// Only non-nil fields are written.
type UserUpdate struct {
	Username string
	Name     *string
	Password *string
}
