// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"

	"github.com/MKhiriev/go-churn-fighter/internal/config"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/store"
	"github.com/MKhiriev/go-churn-fighter/models"
)

// SandboxServices groups the services behind the sandbox backend.
type SandboxServices struct {
	SubmissionService   SubmissionService
	OfferSigningService OfferSigningService
	AppInfoService      AppInfoService
}

// NewSandboxServices builds the sandbox services over a fresh submission
// recorder. Offers are signed with a P-256 key generated for the process.
func NewSandboxServices(cfg *config.SandboxConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*SandboxServices, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate offer signing key: %w", err)
	}

	storages := store.NewSandboxStorages(cfg.SubmissionTTL)

	return &SandboxServices{
		SubmissionService:   NewSubmissionService(storages.SubmissionStorage, logger),
		OfferSigningService: NewOfferSigningService(cfg.OfferKeyIdentifier, key, storages.SubmissionStorage, logger),
		AppInfoService:      NewAppInfoService(buildInfo),
	}, nil
}
