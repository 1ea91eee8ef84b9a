// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/store"
	"github.com/MKhiriev/go-churn-fighter/internal/utils"
	"github.com/MKhiriev/go-churn-fighter/internal/validators"
	"github.com/MKhiriev/go-churn-fighter/models"
)

type offerSigningService struct {
	keyIdentifier string
	key           *ecdsa.PrivateKey
	nonces        IDGenerator
	storage       store.SubmissionStorage
	validator     validators.Validator
	now           func() time.Time
	logger        *logger.Logger
}

// NewOfferSigningService returns an [OfferSigningService] signing with key
// and advertising keyIdentifier. Every request is recorded in storage.
func NewOfferSigningService(keyIdentifier string, key *ecdsa.PrivateKey, storage store.SubmissionStorage, logger *logger.Logger) OfferSigningService {
	return &offerSigningService{
		keyIdentifier: keyIdentifier,
		key:           key,
		nonces:        utils.NewUUIDGenerator(),
		storage:       storage,
		validator:     validators.NewSubmissionValidator(),
		now:           time.Now,
		logger:        logger,
	}
}

func (s *offerSigningService) Sign(ctx context.Context, userID string, req models.OfferSignatureRequest) (models.OfferSignature, error) {
	if userID == "" {
		return models.OfferSignature{}, ErrEmptyUserID
	}
	if err := s.validator.Validate(ctx, req, validators.FieldProductID); err != nil {
		return models.OfferSignature{}, fmt.Errorf("%w: %w", ErrEmptyProductID, err)
	}

	if req.ApplicationUsername == "" {
		req.ApplicationUsername = userID
	}
	if !strings.EqualFold(req.ApplicationUsername, userID) {
		return models.OfferSignature{}, ErrApplicationUsernameMismatch
	}

	nonce := strings.ToLower(s.nonces.Generate())
	timestamp := s.now().UnixMilli()

	signingString := utils.OfferSigningString(s.keyIdentifier, req.ProductID, req.OfferID, req.ApplicationUsername, nonce, timestamp)
	signature, err := utils.SignOffer(signingString, s.key)
	if err != nil {
		return models.OfferSignature{}, err
	}

	if err = s.storage.AppendOfferRequest(ctx, userID, req); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "offerSigningService.Sign").
			Msg("failed to record offer request")
	}

	return models.OfferSignature{
		KeyIdentifier: s.keyIdentifier,
		Nonce:         nonce,
		Signature:     signature,
		Timestamp:     timestamp,
	}, nil
}

func (s *offerSigningService) PublicKeyPEM() ([]byte, error) {
	if s.key == nil {
		return nil, utils.ErrInvalidSigningKey
	}

	der, err := x509.MarshalPKIXPublicKey(&s.key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("marshal offer public key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}
