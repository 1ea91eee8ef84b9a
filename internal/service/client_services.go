// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-churn-fighter/internal/adapter"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/store"
	"github.com/MKhiriev/go-churn-fighter/internal/utils"
	"github.com/MKhiriev/go-churn-fighter/internal/workers"
	"github.com/MKhiriev/go-churn-fighter/platform"
)

// ClientServices groups the services that need storage and transport. They
// are built once the SDK is initialised; the user-state aggregate is created
// earlier so that fields set before initialisation are kept.
type ClientServices struct {
	IdentityService    IdentityService
	FingerprintService FingerprintService
	UserStateService   UserStateService
	SyncService        ClientSyncService
	SyncJob            ClientSyncJob
}

func NewClientServices(
	storages *store.ClientStorages,
	userState UserStateService,
	receipts platform.ReceiptProvider,
	serverAdapter adapter.ServerAdapter,
	dispatcher workers.TaskDispatcher,
	logger *logger.Logger,
) *ClientServices {
	identitySvc := NewIdentityService(storages.Preferences, utils.NewUUIDGenerator(), logger)
	fingerprintSvc := NewFingerprintService(storages.Preferences, logger)
	syncSvc := NewClientSyncService(identitySvc, fingerprintSvc, userState, receipts, serverAdapter, dispatcher, logger)

	return &ClientServices{
		IdentityService:    identitySvc,
		FingerprintService: fingerprintSvc,
		UserStateService:   userState,
		SyncService:        syncSvc,
		SyncJob:            NewClientSyncJob(syncSvc),
	}
}
