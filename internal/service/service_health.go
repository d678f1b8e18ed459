// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/store"
)

type healthService struct {
	checker store.HealthChecker
}

func NewHealthService(checker store.HealthChecker) HealthService {
	return &healthService{checker: checker}
}

func (s *healthService) Ping(ctx context.Context) error {
	if err := s.checker.Ping(ctx); err != nil {
		return fmt.Errorf("store is unreachable: %w", err)
	}

	return nil
}
