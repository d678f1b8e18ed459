// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// UserValidationService validates and normalizes user requests before they
// reach the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewContactBookValidator(),
	}
}

func (v *UserValidationService) Register(ctx context.Context, request *models.RegisterUserRequest) (models.UserResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.UserResponse{}, fmt.Errorf("error during user validation before registration: %w", err)
	}

	return v.inner.Register(ctx, request)
}

func (v *UserValidationService) Login(ctx context.Context, request *models.LoginUserRequest) (models.TokenResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.TokenResponse{}, fmt.Errorf("error during credentials validation before login: %w", err)
	}

	return v.inner.Login(ctx, request)
}

func (v *UserValidationService) Get(ctx context.Context, actor models.User) (models.UserResponse, error) {
	return v.inner.Get(ctx, actor)
}

// Update binds the request to actor: the username is never taken from the
// request body.
func (v *UserValidationService) Update(ctx context.Context, actor models.User, request *models.UpdateUserRequest) (models.UserResponse, error) {
	request.Username = actor.Username
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.UserResponse{}, fmt.Errorf("error during user validation before update: %w", err)
	}

	return v.inner.Update(ctx, actor, request)
}

func (v *UserValidationService) Logout(ctx context.Context, actor models.User) error {
	return v.inner.Logout(ctx, actor)
}

func (v *UserValidationService) Authenticate(ctx context.Context, token string) (models.User, error) {
	return v.inner.Authenticate(ctx, token)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
