// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/store"
)

// IDGenerator produces globally unique identifiers.
type IDGenerator interface {
	Generate() string
}

type identityService struct {
	storage   store.PreferenceStorage
	generator IDGenerator
	logger    *logger.Logger

	mu     sync.Mutex
	userID string
}

// NewIdentityService returns an [IdentityService] persisting the id under
// [store.UserIDKey].
func NewIdentityService(storage store.PreferenceStorage, generator IDGenerator, logger *logger.Logger) IdentityService {
	return &identityService{
		storage:   storage,
		generator: generator,
		logger:    logger,
	}
}

func (s *identityService) GetOrCreateUserID(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID != "" {
		return s.userID
	}

	persisted, err := s.storage.Get(ctx, store.UserIDKey)
	if err == nil && persisted != "" {
		s.userID = persisted
		return s.userID
	}

	s.userID = s.generator.Generate()

	// an unreadable slot may still hold an id; leave it untouched
	if err != nil && !errors.Is(err, store.ErrPreferenceNotFound) {
		s.logger.Warn().Err(err).
			Str("func", "identityService.GetOrCreateUserID").
			Msg("user id storage unreadable, using an id for this process only")
		return s.userID
	}

	if err = s.storage.Set(ctx, store.UserIDKey, s.userID); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "identityService.GetOrCreateUserID").
			Msg("failed to persist user id, using it for this process only")
	}

	return s.userID
}
