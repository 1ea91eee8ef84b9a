// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-churn-fighter/internal/adapter"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/workers"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/MKhiriev/go-churn-fighter/platform"
)

type clientSyncService struct {
	identity     IdentityService
	fingerprints FingerprintService
	userState    UserStateService
	receipts     platform.ReceiptProvider
	adapter      adapter.ServerAdapter
	dispatcher   workers.TaskDispatcher
	logger       *logger.Logger

	// mu serialises the snapshot, compare and record sequence per upload.
	mu sync.Mutex
}

// NewClientSyncService returns the [ClientSyncService]. Uploads run on
// dispatcher; their fingerprint is recorded as soon as they are handed over,
// regardless of the transport outcome.
func NewClientSyncService(
	identity IdentityService,
	fingerprints FingerprintService,
	userState UserStateService,
	receipts platform.ReceiptProvider,
	serverAdapter adapter.ServerAdapter,
	dispatcher workers.TaskDispatcher,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		identity:     identity,
		fingerprints: fingerprints,
		userState:    userState,
		receipts:     receipts,
		adapter:      serverAdapter,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

func (s *clientSyncService) SyncUserState(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := s.identity.GetOrCreateUserID(ctx)
	state := s.userState.Snapshot()

	fp, err := UserStateFingerprint(userID, state)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "clientSyncService.SyncUserState").Send()
		return false
	}

	if !s.fingerprints.ShouldSend(ctx, models.UserStateFingerprint, fp) {
		s.logger.Debug().Str("func", "clientSyncService.SyncUserState").Msg("user state unchanged")
		return false
	}

	accepted := s.dispatcher.Dispatch("send user state", func(ctx context.Context) error {
		return s.adapter.SendUserState(ctx, userID, state)
	})
	s.record(ctx, models.UserStateFingerprint, fp)

	return accepted
}

func (s *clientSyncService) SyncReceipt(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.receipts == nil {
		return false
	}

	raw, err := s.receipts.Receipt()
	if errors.Is(err, platform.ErrNoReceipt) || (err == nil && len(raw) == 0) {
		s.logger.Debug().Str("func", "clientSyncService.SyncReceipt").Msg("no receipt on device")
		return false
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSyncService.SyncReceipt").Msg("failed to read receipt")
		return false
	}

	receipt := base64.StdEncoding.EncodeToString(raw)
	fp := ReceiptFingerprint(receipt)

	if !s.fingerprints.ShouldSend(ctx, models.ReceiptFingerprint, fp) {
		s.logger.Debug().Str("func", "clientSyncService.SyncReceipt").Msg("receipt unchanged")
		return false
	}

	userID := s.identity.GetOrCreateUserID(ctx)
	accepted := s.dispatcher.Dispatch("send receipt", func(ctx context.Context) error {
		return s.adapter.SendReceipt(ctx, userID, models.ReceiptRequest{Receipt: receipt})
	})
	s.record(ctx, models.ReceiptFingerprint, fp)

	return accepted
}

func (s *clientSyncService) record(ctx context.Context, kind models.FingerprintKind, fp models.Fingerprint) {
	if err := s.fingerprints.Record(ctx, kind, fp); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientSyncService.record").
			Stringer("kind", kind).
			Msg("failed to record fingerprint, next sync will resend")
	}
}

func (s *clientSyncService) RequestOfferSignature(ctx context.Context, productID, offerID string) (models.OfferSignature, error) {
	if productID == "" {
		return models.OfferSignature{}, ErrEmptyProductID
	}

	userID := s.identity.GetOrCreateUserID(ctx)
	req := models.OfferSignatureRequest{
		ProductID:           productID,
		OfferID:             offerID,
		ApplicationUsername: userID,
	}

	signature, err := s.adapter.RequestOfferSignature(ctx, userID, req)
	if err != nil {
		return models.OfferSignature{}, fmt.Errorf("request offer signature: %w", err)
	}

	return signature, nil
}
