// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package churnfighter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-churn-fighter/internal/adapter"
	"github.com/MKhiriev/go-churn-fighter/internal/config"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/service"
	"github.com/MKhiriev/go-churn-fighter/internal/store"
	"github.com/MKhiriev/go-churn-fighter/internal/workers"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/MKhiriev/go-churn-fighter/platform"
)

// ChurnFighter is the SDK entry point. All methods are safe for concurrent
// use; user attribute setters and upload decisions are serialised.
type ChurnFighter struct {
	platform platform.Platform
	opts     options
	logger   *logger.Logger

	userState service.UserStateService
	decoder   service.ActionDecoder
	observer  service.TransactionObserverService

	mu          sync.Mutex
	initialized bool
	storages    *store.ClientStorages
	memory      *store.ClientStorages
	services    *service.ClientServices
	workers     *workers.Workers
}

// New creates an SDK instance. Attributes set before Initialize are kept and
// uploaded once the SDK is initialised. A nil Environment is replaced by
// [platform.NewHostEnvironment].
func New(p platform.Platform, opts ...Option) *ChurnFighter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if p.Environment == nil {
		p.Environment = platform.NewHostEnvironment()
	}

	cf := &ChurnFighter{
		platform:  p,
		opts:      o,
		logger:    o.logger,
		userState: service.NewUserStateService(p.Environment),
		decoder:   service.NewActionDecoder(o.logger),
	}
	cf.observer = service.NewTransactionObserver(transactionSink{cf}, o.fatal, o.eventBuffer, o.logger)

	return cf
}

// Initialize opens the local storage, connects the backend transport with
// apiKey and secret, subscribes to purchase transactions and uploads the
// receipt if it changed. A database that cannot be opened is replaced by
// in-memory storage.
func (cf *ChurnFighter) Initialize(apiKey, secret string) error {
	if apiKey == "" || secret == "" {
		return ErrMissingCredentials
	}

	cf.mu.Lock()
	defer cf.mu.Unlock()

	if cf.initialized {
		return ErrAlreadyInitialized
	}

	ctx := context.Background()
	storages := cf.openStorages(ctx)

	serverAdapter, err := adapter.NewHTTPServerAdapter(
		adapter.HTTPConfig{BaseURL: cf.opts.baseURL, RequestTimeout: cf.opts.requestTimeout},
		adapter.Credentials{APIKey: apiKey, Secret: secret},
		cf.logger,
	)
	if err != nil {
		return errors.Join(fmt.Errorf("create server adapter: %w", err), cf.closeStorages(storages))
	}

	dispatcher := cf.opts.dispatcher
	var pool *workers.Workers
	if dispatcher == nil {
		d := workers.NewDispatcher(cf.opts.dispatchWorkers, cf.opts.queueSize, cf.logger)
		pool = workers.NewWorkers(d)
		pool.Run()
		dispatcher = d
	}

	cf.storages = storages
	cf.workers = pool
	cf.services = service.NewClientServices(storages, cf.userState, cf.platform.ReceiptProvider, serverAdapter, dispatcher, cf.logger)
	cf.initialized = true

	if cf.platform.PaymentQueue != nil {
		cf.platform.PaymentQueue.AddTransactionObserver(cf.observer)
	}

	cf.logger.Info().
		Str("func", "ChurnFighter.Initialize").
		Str("user_id", cf.services.IdentityService.GetOrCreateUserID(ctx)).
		Msg("sdk initialized")

	cf.services.SyncService.SyncReceipt(ctx)

	if cf.opts.resyncInterval > 0 {
		cf.services.SyncJob.Start(context.Background(), cf.opts.resyncInterval)
	}

	return nil
}

func (cf *ChurnFighter) openStorages(ctx context.Context) *store.ClientStorages {
	if cf.opts.dsn == "" {
		return cf.memoryStorages()
	}

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		DB:        config.ClientDB{DSN: cf.opts.dsn},
		SuiteName: cf.opts.suiteName,
	}, cf.logger)
	if err != nil {
		cf.logger.Warn().Err(err).
			Str("func", "ChurnFighter.openStorages").
			Msg("database unavailable, keeping state in memory")
		return cf.memoryStorages()
	}

	return storages
}

// memoryStorages returns the in-memory fallback. It is created once and
// outlives Teardown so the user id and fingerprints stay stable for the
// life of the process.
func (cf *ChurnFighter) memoryStorages() *store.ClientStorages {
	if cf.memory == nil {
		cf.memory = store.NewMemoryClientStorages()
	}
	return cf.memory
}

func (cf *ChurnFighter) closeStorages(s *store.ClientStorages) error {
	if s == cf.memory {
		return nil
	}
	return s.Close()
}

// Teardown unsubscribes from purchase transactions, waits for queued uploads
// and closes the database. In-memory state is kept for the next Initialize. The instance may be initialised again afterwards.
func (cf *ChurnFighter) Teardown() error {
	cf.mu.Lock()
	defer cf.mu.Unlock()

	if !cf.initialized {
		return nil
	}

	if cf.platform.PaymentQueue != nil {
		cf.platform.PaymentQueue.RemoveTransactionObserver(cf.observer)
	}

	cf.services.SyncJob.Stop()
	if cf.workers != nil {
		cf.workers.Stop()
	}

	err := cf.closeStorages(cf.storages)

	cf.initialized = false
	cf.services = nil
	cf.storages = nil
	cf.workers = nil

	if err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}

// SetUserEmail records the user's contact email and uploads the user state
// if it changed.
func (cf *ChurnFighter) SetUserEmail(email string) {
	cf.updateUserState(func(s service.UserStateService) { s.SetEmail(email) })
}

// SetUserLocale overrides the device locale reported for the user.
func (cf *ChurnFighter) SetUserLocale(locale string) {
	cf.updateUserState(func(s service.UserStateService) { s.SetLocale(locale) })
}

// SetUserProperty sets a custom user property.
func (cf *ChurnFighter) SetUserProperty(key, value string) {
	cf.updateUserState(func(s service.UserStateService) { s.SetUserProperty(key, value) })
}

// DidRegisterForRemoteNotifications records the push device token.
func (cf *ChurnFighter) DidRegisterForRemoteNotifications(deviceToken []byte) {
	cf.updateUserState(func(s service.UserStateService) { s.SetDeviceToken(deviceToken) })
}

// LinkOriginalTransaction associates the user with the first transaction of
// their subscription.
func (cf *ChurnFighter) LinkOriginalTransaction(originalTransactionID string) {
	cf.linkOriginalTransaction(context.Background(), originalTransactionID)
}

func (cf *ChurnFighter) linkOriginalTransaction(ctx context.Context, id string) {
	cf.updateUserStateContext(ctx, func(s service.UserStateService) { s.SetOriginalTransactionID(id) })
}

func (cf *ChurnFighter) updateUserState(set func(service.UserStateService)) {
	cf.updateUserStateContext(context.Background(), set)
}

func (cf *ChurnFighter) updateUserStateContext(ctx context.Context, set func(service.UserStateService)) {
	cf.mu.Lock()
	defer cf.mu.Unlock()

	set(cf.userState)
	if cf.initialized {
		cf.services.SyncService.SyncUserState(ctx)
	}
}

// MaybeSendUserState uploads the user state if it changed since the last
// upload and reports whether an upload was queued.
func (cf *ChurnFighter) MaybeSendUserState(ctx context.Context) bool {
	cf.mu.Lock()
	defer cf.mu.Unlock()

	if !cf.initialized {
		return false
	}
	return cf.services.SyncService.SyncUserState(ctx)
}

// MaybeSendReceipt uploads the device receipt if it changed since the last
// upload and reports whether an upload was queued.
func (cf *ChurnFighter) MaybeSendReceipt(ctx context.Context) bool {
	cf.mu.Lock()
	defer cf.mu.Unlock()

	if !cf.initialized {
		return false
	}
	return cf.services.SyncService.SyncReceipt(ctx)
}

// ActionFromNotification extracts a retention action from a push payload.
func (cf *ChurnFighter) ActionFromNotification(content models.NotificationContent) (models.Action, bool) {
	return cf.decoder.DecodeFromNotification(content)
}

// ActionFromUniversalLink extracts a retention action from an opened link.
func (cf *ChurnFighter) ActionFromUniversalLink(activity models.UserActivity) (models.Action, bool) {
	return cf.decoder.DecodeFromUniversalLink(activity)
}

// PrepareOfferSignature asks the backend to sign a promotional offer for this
// installation. The call blocks until the backend answers or ctx is done.
func (cf *ChurnFighter) PrepareOfferSignature(ctx context.Context, productID, offerID string) (models.OfferSignature, error) {
	cf.mu.Lock()
	if !cf.initialized {
		cf.mu.Unlock()
		return models.OfferSignature{}, ErrNotInitialized
	}
	syncSvc := cf.services.SyncService
	cf.mu.Unlock()

	return syncSvc.RequestOfferSignature(ctx, productID, offerID)
}

// UserID returns the anonymous id this installation reports as.
func (cf *ChurnFighter) UserID(ctx context.Context) (string, error) {
	cf.mu.Lock()
	defer cf.mu.Unlock()

	if !cf.initialized {
		return "", ErrNotInitialized
	}
	return cf.services.IdentityService.GetOrCreateUserID(ctx), nil
}

// Events streams processed purchase transactions. The channel is never
// closed; events are dropped while it is full.
func (cf *ChurnFighter) Events() <-chan models.TransactionEvent {
	return cf.observer.Events()
}

// transactionSink routes observer side effects through the facade so they
// share its lock.
type transactionSink struct {
	cf *ChurnFighter
}

func (s transactionSink) LinkOriginalTransaction(ctx context.Context, originalTransactionID string) {
	s.cf.linkOriginalTransaction(ctx, originalTransactionID)
}

func (s transactionSink) SyncReceipt(ctx context.Context) {
	s.cf.MaybeSendReceipt(ctx)
}
