// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/go-churn-fighter/internal/adapter"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/mock"
	"github.com/MKhiriev/go-churn-fighter/internal/store"
	"github.com/MKhiriev/go-churn-fighter/internal/workers"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/MKhiriev/go-churn-fighter/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// rejectingDispatcher drops every task, as a full queue would.
type rejectingDispatcher struct{ calls int }

func (d *rejectingDispatcher) Dispatch(string, workers.Task) bool {
	d.calls++
	return false
}

type syncFixture struct {
	storage   store.PreferenceStorage
	userState UserStateService
	receipts  *platform.MemoryReceiptProvider
	adapter   *mock.MockServerAdapter
	svc       ClientSyncService
}

func newSyncFixture(t *testing.T, dispatcher workers.TaskDispatcher) *syncFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &syncFixture{
		storage:   store.NewMemoryPreferenceStorage(),
		userState: NewUserStateService(testEnvironment()),
		receipts:  platform.NewMemoryReceiptProvider(nil),
		adapter:   mock.NewMockServerAdapter(ctrl),
	}
	if dispatcher == nil {
		dispatcher = workers.NewInlineDispatcher(logger.Nop())
	}

	log := logger.Nop()
	identity := NewIdentityService(f.storage, &sequenceGenerator{ids: []string{"user-1"}}, log)
	f.svc = NewClientSyncService(identity, NewFingerprintService(f.storage, log), f.userState, f.receipts, f.adapter, dispatcher, log)

	return f
}

func TestClientSyncService_SyncUserState_Dedup(t *testing.T) {
	f := newSyncFixture(t, nil)
	ctx := context.Background()

	f.adapter.EXPECT().SendUserState(gomock.Any(), "user-1", gomock.Any()).Return(nil).Times(1)

	assert.True(t, f.svc.SyncUserState(ctx))
	assert.False(t, f.svc.SyncUserState(ctx), "unchanged state is not resent")
}

func TestClientSyncService_SyncUserState_ChangeTriggersSend(t *testing.T) {
	f := newSyncFixture(t, nil)
	ctx := context.Background()

	var sent []models.UserState
	f.adapter.EXPECT().SendUserState(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, state models.UserState) error {
			sent = append(sent, state)
			return nil
		}).Times(2)

	require.True(t, f.svc.SyncUserState(ctx))
	before, err := f.storage.Get(ctx, store.UserHashKey)
	require.NoError(t, err)

	f.userState.SetEmail("user@example.com")
	require.True(t, f.svc.SyncUserState(ctx))
	after, err := f.storage.Get(ctx, store.UserHashKey)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
	require.Len(t, sent, 2)
	assert.Nil(t, sent[0].Email)
	assert.Equal(t, "user@example.com", *sent[1].Email)
}

func TestClientSyncService_SyncUserState_TransportErrorStillRecorded(t *testing.T) {
	f := newSyncFixture(t, nil)
	ctx := context.Background()

	f.adapter.EXPECT().SendUserState(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(adapter.ErrInternalServerError).Times(1)

	assert.True(t, f.svc.SyncUserState(ctx))
	assert.False(t, f.svc.SyncUserState(ctx))
}

func TestClientSyncService_SyncUserState_DroppedDispatchStillRecorded(t *testing.T) {
	d := &rejectingDispatcher{}
	f := newSyncFixture(t, d)
	ctx := context.Background()

	assert.False(t, f.svc.SyncUserState(ctx))
	assert.False(t, f.svc.SyncUserState(ctx))
	assert.Equal(t, 1, d.calls)

	_, err := f.storage.Get(ctx, store.UserHashKey)
	assert.NoError(t, err)
}

func TestClientSyncService_SyncReceipt(t *testing.T) {
	f := newSyncFixture(t, nil)
	ctx := context.Background()
	raw := []byte{0x30, 0x82, 0x01, 0xff}

	f.adapter.EXPECT().
		SendReceipt(gomock.Any(), "user-1", models.ReceiptRequest{Receipt: base64.StdEncoding.EncodeToString(raw)}).
		Return(nil).Times(1)

	f.receipts.SetReceipt(raw)
	assert.True(t, f.svc.SyncReceipt(ctx))
	assert.False(t, f.svc.SyncReceipt(ctx), "same receipt is not resent")
}

func TestClientSyncService_SyncReceipt_ChangedReceipt(t *testing.T) {
	f := newSyncFixture(t, nil)
	ctx := context.Background()

	f.adapter.EXPECT().SendReceipt(gomock.Any(), "user-1", gomock.Any()).Return(nil).Times(2)

	f.receipts.SetReceipt([]byte("receipt-1"))
	assert.True(t, f.svc.SyncReceipt(ctx))

	f.receipts.SetReceipt([]byte("receipt-2"))
	assert.True(t, f.svc.SyncReceipt(ctx))
}

func TestClientSyncService_SyncReceipt_NoReceipt(t *testing.T) {
	f := newSyncFixture(t, nil)
	ctx := context.Background()

	assert.False(t, f.svc.SyncReceipt(ctx))

	_, err := f.storage.Get(ctx, store.ReceiptHashKey)
	assert.ErrorIs(t, err, store.ErrPreferenceNotFound)
}

type failingReceiptProvider struct{}

func (failingReceiptProvider) Receipt() ([]byte, error) {
	return nil, errors.New("permission denied")
}

func TestClientSyncService_SyncReceipt_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.Nop()
	storage := store.NewMemoryPreferenceStorage()

	svc := NewClientSyncService(
		NewIdentityService(storage, &sequenceGenerator{ids: []string{"u"}}, log),
		NewFingerprintService(storage, log),
		NewUserStateService(nil),
		failingReceiptProvider{},
		mock.NewMockServerAdapter(ctrl),
		workers.NewInlineDispatcher(log),
		log,
	)

	assert.False(t, svc.SyncReceipt(context.Background()))
}

func TestClientSyncService_RequestOfferSignature(t *testing.T) {
	f := newSyncFixture(t, nil)
	ctx := context.Background()
	want := models.OfferSignature{KeyIdentifier: "K", Nonce: "n", Signature: "s", Timestamp: 1700000000000}

	f.adapter.EXPECT().RequestOfferSignature(ctx, "user-1", models.OfferSignatureRequest{
		ProductID:           "com.app.monthly",
		OfferID:             "winback50",
		ApplicationUsername: "user-1",
	}).Return(want, nil)

	got, err := f.svc.RequestOfferSignature(ctx, "com.app.monthly", "winback50")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientSyncService_RequestOfferSignature_Errors(t *testing.T) {
	f := newSyncFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.RequestOfferSignature(ctx, "", "offer")
	assert.ErrorIs(t, err, ErrEmptyProductID)

	f.adapter.EXPECT().RequestOfferSignature(ctx, "user-1", gomock.Any()).
		Return(models.OfferSignature{}, adapter.ErrUnauthorized)

	_, err = f.svc.RequestOfferSignature(ctx, "p", "o")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
