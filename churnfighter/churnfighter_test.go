// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package churnfighter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-churn-fighter/internal/adapter"
	"github.com/MKhiriev/go-churn-fighter/internal/config"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/service"
	"github.com/MKhiriev/go-churn-fighter/internal/store"
	"github.com/MKhiriev/go-churn-fighter/internal/workers"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/MKhiriev/go-churn-fighter/platform"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Path   string
	APIKey string
	Secret string
	Body   []byte
}

// recordingBackend answers 200 to everything and keeps the requests.
type recordingBackend struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newRecordingBackend(t *testing.T) *recordingBackend {
	t.Helper()

	b := &recordingBackend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		b.mu.Lock()
		b.requests = append(b.requests, recordedRequest{
			Path:   r.URL.Path,
			APIKey: r.Header.Get(adapter.HeaderAPIKey),
			Secret: r.Header.Get(adapter.HeaderSecret),
			Body:   body,
		})
		b.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if strings.HasPrefix(r.URL.Path, "/subscriptionOfferSignature/") {
			_ = json.NewEncoder(w).Encode(models.OfferSignature{
				KeyIdentifier: "KEY", Nonce: "nonce", Signature: "sig", Timestamp: 42,
			})
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(b.Close)

	return b
}

func (b *recordingBackend) byPrefix(prefix string) []recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []recordedRequest
	for _, r := range b.requests {
		if strings.HasPrefix(r.Path, prefix) {
			out = append(out, r)
		}
	}
	return out
}

type testSDK struct {
	cf       *ChurnFighter
	backend  *recordingBackend
	queue    *platform.MemoryPaymentQueue
	receipts *platform.MemoryReceiptProvider
}

func newTestSDK(t *testing.T, opts ...Option) *testSDK {
	t.Helper()

	backend := newRecordingBackend(t)
	queue := platform.NewMemoryPaymentQueue()
	receipts := platform.NewMemoryReceiptProvider(nil)

	base := []Option{
		WithBaseURL(backend.URL),
		WithDatabase(""),
		WithLogger(zerolog.Nop()),
		withDispatcher(workers.NewInlineDispatcher(logger.Nop())),
	}
	cf := New(platform.Platform{
		PaymentQueue:    queue,
		ReceiptProvider: receipts,
		Environment:     platform.StaticEnvironment{LocaleValue: "en_GB", TimeZoneValue: "Europe/London"},
	}, append(base, opts...)...)

	return &testSDK{cf: cf, backend: backend, queue: queue, receipts: receipts}
}

func TestInitialize_RequiresCredentials(t *testing.T) {
	sdk := newTestSDK(t)

	assert.ErrorIs(t, sdk.cf.Initialize("", "secret"), ErrMissingCredentials)
	assert.ErrorIs(t, sdk.cf.Initialize("key", ""), ErrMissingCredentials)
}

func TestInitialize_Twice(t *testing.T) {
	sdk := newTestSDK(t)

	require.NoError(t, sdk.cf.Initialize("key", "secret"))
	assert.ErrorIs(t, sdk.cf.Initialize("key", "secret"), ErrAlreadyInitialized)
	require.NoError(t, sdk.cf.Teardown())
}

func TestInitialize_SubscribesAndSendsReceipt(t *testing.T) {
	sdk := newTestSDK(t)
	sdk.receipts.SetReceipt([]byte("receipt-bytes"))

	require.NoError(t, sdk.cf.Initialize("key", "secret"))
	assert.Equal(t, 1, sdk.queue.Observers())

	receipts := sdk.backend.byPrefix("/receipt/")
	require.Len(t, receipts, 1)
	assert.Equal(t, "key", receipts[0].APIKey)
	assert.Equal(t, "secret", receipts[0].Secret)

	var body models.ReceiptRequest
	require.NoError(t, json.Unmarshal(receipts[0].Body, &body))
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("receipt-bytes")), body.Receipt)

	userID, err := sdk.cf.UserID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/receipt/"+userID, receipts[0].Path)

	require.NoError(t, sdk.cf.Teardown())
	assert.Zero(t, sdk.queue.Observers())
}

func TestInitialize_InvalidBaseURL(t *testing.T) {
	sdk := newTestSDK(t, WithBaseURL("http://"))

	assert.Error(t, sdk.cf.Initialize("key", "secret"))
	assert.Zero(t, sdk.queue.Observers())
}

func TestSetters_BeforeInitialize_AreStaged(t *testing.T) {
	sdk := newTestSDK(t)

	sdk.cf.SetUserEmail("user@example.com")
	sdk.cf.SetUserProperty("plan", "pro")
	assert.Empty(t, sdk.backend.byPrefix("/user/"), "nothing is sent before Initialize")
	assert.False(t, sdk.cf.MaybeSendUserState(context.Background()))

	require.NoError(t, sdk.cf.Initialize("key", "secret"))
	defer sdk.cf.Teardown()

	require.True(t, sdk.cf.MaybeSendUserState(context.Background()))

	users := sdk.backend.byPrefix("/user/")
	require.Len(t, users, 1)

	var state models.UserState
	require.NoError(t, json.Unmarshal(users[0].Body, &state))
	assert.Equal(t, "user@example.com", *state.Email)
	assert.Equal(t, "pro", state.CustomInfo["plan"])
	assert.Equal(t, "en-GB", *state.Locale)
	assert.Equal(t, "Europe/London", *state.TimeZone)
}

func TestSetters_SendOnlyChanges(t *testing.T) {
	sdk := newTestSDK(t)
	require.NoError(t, sdk.cf.Initialize("key", "secret"))
	defer sdk.cf.Teardown()

	sdk.cf.SetUserEmail("a@example.com")
	sdk.cf.SetUserEmail("a@example.com")
	assert.Len(t, sdk.backend.byPrefix("/user/"), 1, "same state is sent once")

	sdk.cf.SetUserLocale("fr_FR")
	sdk.cf.DidRegisterForRemoteNotifications([]byte{0x01, 0xab})
	users := sdk.backend.byPrefix("/user/")
	require.Len(t, users, 3)

	var state models.UserState
	require.NoError(t, json.Unmarshal(users[2].Body, &state))
	assert.Equal(t, "fr-FR", *state.Locale)
	assert.Equal(t, "01ab", *state.DeviceToken)
}

func TestTransactions_PurchasedLinksAndSyncsReceipt(t *testing.T) {
	sdk := newTestSDK(t)
	require.NoError(t, sdk.cf.Initialize("key", "secret"))
	defer sdk.cf.Teardown()

	sdk.receipts.SetReceipt([]byte("receipt-after-purchase"))
	sdk.queue.Publish(
		models.TransactionRecord{
			TransactionID: "t-2",
			State:         models.TransactionPurchased,
			Original:      &models.OriginalTransaction{TransactionID: "t-1"},
		},
		models.TransactionRecord{TransactionID: "t-3", State: models.TransactionFailed},
	)

	assert.Len(t, sdk.backend.byPrefix("/receipt/"), 1)

	users := sdk.backend.byPrefix("/user/")
	require.Len(t, users, 1)
	var state models.UserState
	require.NoError(t, json.Unmarshal(users[0].Body, &state))
	assert.Equal(t, "t-1", *state.OriginalTransactionID)

	events := sdk.cf.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "t-2", (<-events).TransactionID)
}

func TestTransactions_UnknownStateReachesFatalHandler(t *testing.T) {
	var fatal []error
	sdk := newTestSDK(t, WithFatalHandler(func(err error) { fatal = append(fatal, err) }))
	require.NoError(t, sdk.cf.Initialize("key", "secret"))
	defer sdk.cf.Teardown()

	sdk.queue.Publish(models.TransactionRecord{TransactionID: "t", State: models.TransactionState(12)})

	require.Len(t, fatal, 1)
	assert.ErrorIs(t, fatal[0], service.ErrUnknownTransactionState)
}

func TestPrepareOfferSignature(t *testing.T) {
	sdk := newTestSDK(t)

	_, err := sdk.cf.PrepareOfferSignature(context.Background(), "p", "o")
	assert.ErrorIs(t, err, ErrNotInitialized)

	require.NoError(t, sdk.cf.Initialize("key", "secret"))
	defer sdk.cf.Teardown()

	sig, err := sdk.cf.PrepareOfferSignature(context.Background(), "com.app.monthly", "winback")
	require.NoError(t, err)
	assert.Equal(t, models.OfferSignature{KeyIdentifier: "KEY", Nonce: "nonce", Signature: "sig", Timestamp: 42}, sig)

	reqs := sdk.backend.byPrefix("/subscriptionOfferSignature/")
	require.Len(t, reqs, 1)

	var body models.OfferSignatureRequest
	require.NoError(t, json.Unmarshal(reqs[0].Body, &body))
	userID, _ := sdk.cf.UserID(context.Background())
	assert.Equal(t, models.OfferSignatureRequest{
		ProductID: "com.app.monthly", OfferID: "winback", ApplicationUsername: userID,
	}, body)
}

func TestActions(t *testing.T) {
	sdk := newTestSDK(t)
	payload, err := json.Marshal(map[string]string{
		"title": "t", "body": "b", "cta": "c", "url": "https://example.com/billing",
	})
	require.NoError(t, err)
	raw := base64.StdEncoding.EncodeToString(payload)

	action, ok := sdk.cf.ActionFromNotification(models.NotificationContent{"payment": raw})
	require.True(t, ok)
	assert.Equal(t, models.ActionTypePayment, action.Type())

	action, ok = sdk.cf.ActionFromUniversalLink(models.UserActivity{
		ActivityType: models.ActivityTypeBrowsingWeb,
		WebpageURL:   &url.URL{Scheme: "https", Host: "x.test", RawQuery: url.Values{"payment": {raw}}.Encode()},
	})
	require.True(t, ok)
	assert.Equal(t, models.ActionTypePayment, action.Type())
}

func TestTeardown_NotInitialized(t *testing.T) {
	sdk := newTestSDK(t)
	assert.NoError(t, sdk.cf.Teardown())
}

func TestTeardown_DrainsWorkerPool(t *testing.T) {
	backend := newRecordingBackend(t)
	cf := New(platform.Platform{Environment: platform.StaticEnvironment{}},
		WithBaseURL(backend.URL),
		WithDatabase(""),
		WithLogger(zerolog.Nop()),
		WithDispatchWorkers(1, 8),
	)

	require.NoError(t, cf.Initialize("key", "secret"))
	cf.SetUserEmail("drain@example.com")
	require.NoError(t, cf.Teardown())

	assert.Len(t, backend.byPrefix("/user/"), 1, "queued upload completes before Teardown returns")
}

func TestIdentity_MemoryFallbackSurvivesReinitialize(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	require.NoError(t, sdk.cf.Initialize("key", "secret"))
	id1, err := sdk.cf.UserID(ctx)
	require.NoError(t, err)
	sdk.cf.SetUserEmail("same@example.com")
	require.NoError(t, sdk.cf.Teardown())

	require.NoError(t, sdk.cf.Initialize("key", "secret"))
	defer sdk.cf.Teardown()
	id2, err := sdk.cf.UserID(ctx)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.False(t, sdk.cf.MaybeSendUserState(ctx), "unchanged state is not uploaded again")

	users := sdk.backend.byPrefix("/user/")
	require.Len(t, users, 1)
	assert.Equal(t, "/user/"+id1, users[0].Path)
}

func TestConcurrentSettersAndPurchases(t *testing.T) {
	const n = 32

	sdk := newTestSDK(t)
	require.NoError(t, sdk.cf.Initialize("key", "secret"))
	defer sdk.cf.Teardown()

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sdk.cf.SetUserProperty(fmt.Sprintf("k%d", i), "v")
		}()
		go func() {
			defer wg.Done()
			sdk.queue.Publish(models.TransactionRecord{
				TransactionID: fmt.Sprintf("t%d", i),
				State:         models.TransactionPurchased,
				Original:      &models.OriginalTransaction{TransactionID: "orig"},
			})
		}()
	}
	wg.Wait()

	users := sdk.backend.byPrefix("/user/")
	require.NotEmpty(t, users)

	var last models.UserState
	require.NoError(t, json.Unmarshal(users[len(users)-1].Body, &last))
	require.NotNil(t, last.OriginalTransactionID)
	assert.Equal(t, "orig", *last.OriginalTransactionID)
	assert.Len(t, last.CustomInfo, n)
	for i := range n {
		assert.Equal(t, "v", last.CustomInfo[fmt.Sprintf("k%d", i)])
	}

	assert.False(t, sdk.cf.MaybeSendUserState(context.Background()))
}

func TestIdentity_PersistsAcrossInstances(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "cf.db")
	probe, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		DB:        config.ClientDB{DSN: filepath.Join(t.TempDir(), "probe.db")},
		SuiteName: config.DefaultSuiteName,
	}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	require.NoError(t, probe.Close())

	backend := newRecordingBackend(t)

	open := func() *ChurnFighter {
		cf := New(platform.Platform{Environment: platform.StaticEnvironment{}},
			WithBaseURL(backend.URL),
			WithDatabase(dsn),
			WithLogger(zerolog.Nop()),
			withDispatcher(workers.NewInlineDispatcher(logger.Nop())),
		)
		require.NoError(t, cf.Initialize("key", "secret"))
		return cf
	}

	first := open()
	id1, err := first.UserID(context.Background())
	require.NoError(t, err)
	require.NoError(t, first.Teardown())

	second := open()
	defer second.Teardown()
	id2, err := second.UserID(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.Equal(t, id1, id2)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: "https://cf.test", RequestTimeout: config.DefaultRequestTimeout * 2},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: "x.db"}, SuiteName: "suite"},
		Workers: config.ClientWorkers{DispatchWorkers: 3, QueueSize: 9, ResyncInterval: config.DefaultRequestTimeout},
	}

	o := defaultOptions()
	for _, opt := range OptionsFromConfig(cfg) {
		opt(&o)
	}

	assert.Equal(t, "https://cf.test", o.baseURL)
	assert.Equal(t, config.DefaultRequestTimeout*2, o.requestTimeout)
	assert.Equal(t, "x.db", o.dsn)
	assert.Equal(t, "suite", o.suiteName)
	assert.Equal(t, 3, o.dispatchWorkers)
	assert.Equal(t, 9, o.queueSize)
	assert.Equal(t, config.DefaultRequestTimeout, o.resyncInterval)
}
