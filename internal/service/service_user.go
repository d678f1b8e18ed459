// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/crypto"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

// userService is the concrete implementation of UserService.
// It handles registration, credential verification and the session token
// lifecycle. Input is expected to be validated already (see
// [UserValidationService]).
type userService struct {
	// userRepository is the data-access layer for accounts and tokens.
	userRepository store.UserRepository

	// hasher hashes new passwords and checks login attempts.
	hasher crypto.PasswordHasher

	// idGenerator produces the unique "jti" of every session token.
	idGenerator *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every session token.
	tokenIssuer string

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository and
// hasher, with token settings taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		idGenerator:    utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Returns the public projection of the stored user or:
//   - ErrUsernameAlreadyExists if the username is taken, either found by the
//     pre-check or reported by the store on insert.
//   - A wrapped store or hasher error otherwise.
func (s *userService) Register(ctx context.Context, request *models.RegisterUserRequest) (models.UserResponse, error) {
	count, err := s.userRepository.CountByUsername(ctx, request.Username)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("error checking username: %w", err)
	}
	if count > 0 {
		return models.UserResponse{}, ErrUsernameAlreadyExists
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := s.userRepository.Create(ctx, models.User{
		Username: request.Username,
		Password: hash,
		Name:     request.Name,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.UserResponse{}, ErrUsernameAlreadyExists
	}
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("username", created.Username).Msg("user registered")

	return created.Response(), nil
}

// Login checks the credentials and starts a new session.
//
// An unknown username and a wrong password both yield ErrWrongCredentials.
// The new token replaces the stored one, so at most one session is active
// per user.
func (s *userService) Login(ctx context.Context, request *models.LoginUserRequest) (models.TokenResponse, error) {
	user, err := s.userRepository.FindByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.TokenResponse{}, ErrWrongCredentials
	}
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	err = s.hasher.Compare(user.Password, request.Password)
	if errors.Is(err, crypto.ErrPasswordMismatch) {
		return models.TokenResponse{}, ErrWrongCredentials
	}
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("error comparing password: %w", err)
	}

	token, err := utils.GenerateSessionToken(s.tokenIssuer, user.Username, s.idGenerator.Generate(), s.tokenSignKey)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("error creating session token: %w", err)
	}

	signed := token.String()
	if err = s.userRepository.SetToken(ctx, user.Username, &signed); err != nil {
		return models.TokenResponse{}, fmt.Errorf("error storing session token: %w", err)
	}

	return models.TokenResponse{Token: signed}, nil
}

// Get returns the stored projection of actor.
func (s *userService) Get(ctx context.Context, actor models.User) (models.UserResponse, error) {
	user, err := s.userRepository.FindByUsername(ctx, actor.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.UserResponse{}, ErrUserNotFound
	}
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user.Response(), nil
}

// Update changes the name and/or password of actor. A new password is
// hashed before storage.
func (s *userService) Update(ctx context.Context, actor models.User, request *models.UpdateUserRequest) (models.UserResponse, error) {
	update := models.UserUpdate{
		Username: actor.Username,
		Name:     request.Name,
	}

	if request.Password != nil {
		hash, err := s.hasher.Hash(*request.Password)
		if err != nil {
			return models.UserResponse{}, fmt.Errorf("error hashing password: %w", err)
		}
		update.Password = &hash
	}

	user, err := s.userRepository.Update(ctx, update)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.UserResponse{}, ErrUserNotFound
	}
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return user.Response(), nil
}

// Logout clears the stored token. The old token stops authenticating
// immediately.
func (s *userService) Logout(ctx context.Context, actor models.User) error {
	err := s.userRepository.SetToken(ctx, actor.Username, nil)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("error clearing session token: %w", err)
	}

	return nil
}

// Authenticate looks the token up by equality. The token is opaque here:
// its signature and claims are never checked.
func (s *userService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrInvalidSession
	}

	user, err := s.userRepository.FindByToken(ctx, token)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrInvalidSession
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return user, nil
}
