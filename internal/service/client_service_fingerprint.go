// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/store"
	"github.com/MKhiriev/go-churn-fighter/internal/utils"
	"github.com/MKhiriev/go-churn-fighter/models"
)

type fingerprintService struct {
	storage store.PreferenceStorage
	logger  *logger.Logger
}

// NewFingerprintService returns a [FingerprintService] keeping one slot per
// kind in storage.
func NewFingerprintService(storage store.PreferenceStorage, logger *logger.Logger) FingerprintService {
	return &fingerprintService{storage: storage, logger: logger}
}

func (s *fingerprintService) ShouldSend(ctx context.Context, kind models.FingerprintKind, fp models.Fingerprint) bool {
	key, err := fingerprintKey(kind)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "fingerprintService.ShouldSend").Send()
		return true
	}

	previous, err := s.storage.Get(ctx, key)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return true
	}
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "fingerprintService.ShouldSend").
			Stringer("kind", kind).
			Msg("failed to read previous fingerprint, treating as changed")
		return true
	}

	return previous != string(fp)
}

func (s *fingerprintService) Record(ctx context.Context, kind models.FingerprintKind, fp models.Fingerprint) error {
	key, err := fingerprintKey(kind)
	if err != nil {
		return err
	}

	if err = s.storage.Set(ctx, key, string(fp)); err != nil {
		return fmt.Errorf("record %s fingerprint: %w", kind, err)
	}

	return nil
}

func fingerprintKey(kind models.FingerprintKind) (string, error) {
	switch kind {
	case models.UserStateFingerprint:
		return store.UserHashKey, nil
	case models.ReceiptFingerprint:
		return store.ReceiptHashKey, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownFingerprintKind, int(kind))
	}
}

// UserStateFingerprint digests state together with userID. Structurally equal
// states produce the same fingerprint for the same user: encoding/json writes
// struct fields in declaration order and map keys sorted.
func UserStateFingerprint(userID string, state models.UserState) (models.Fingerprint, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encode user state: %w", err)
	}

	return models.Fingerprint(utils.HashString(payload, userID)), nil
}

// ReceiptFingerprint digests a base64-armoured receipt.
func ReceiptFingerprint(receipt string) models.Fingerprint {
	return models.Fingerprint(utils.Digest([]byte(receipt)))
}
