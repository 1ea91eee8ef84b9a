// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/store"
	"github.com/MKhiriev/go-churn-fighter/internal/validators"
	"github.com/MKhiriev/go-churn-fighter/models"
)

type submissionService struct {
	storage   store.SubmissionStorage
	validator validators.Validator
	logger    *logger.Logger
}

func NewSubmissionService(storage store.SubmissionStorage, logger *logger.Logger) SubmissionService {
	return &submissionService{
		storage:   storage,
		validator: validators.NewSubmissionValidator(),
		logger:    logger,
	}
}

func (s *submissionService) RecordUserState(ctx context.Context, userID string, state models.UserState) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	// an unknown time zone is logged, not rejected
	if err := s.validator.Validate(ctx, state, validators.FieldTimeZone); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "submissionService.RecordUserState").
			Str("user_id", userID).
			Msg("user state carries an unknown time zone")
	}

	if err := s.storage.SaveUserState(ctx, userID, state); err != nil {
		return fmt.Errorf("save user state: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "submissionService.RecordUserState").
		Str("user_id", userID).
		Msg("user state recorded")
	return nil
}

func (s *submissionService) RecordReceipt(ctx context.Context, userID string, req models.ReceiptRequest) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReceipt, err)
	}

	if err := s.storage.AppendReceipt(ctx, userID, req.Receipt); err != nil {
		return fmt.Errorf("append receipt: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "submissionService.RecordReceipt").
		Str("user_id", userID).
		Int("size", len(req.Receipt)).
		Msg("receipt recorded")
	return nil
}

func (s *submissionService) Submissions(ctx context.Context, userID string) (models.UserSubmissions, error) {
	if userID == "" {
		return models.UserSubmissions{}, ErrEmptyUserID
	}
	return s.storage.Get(ctx, userID)
}
