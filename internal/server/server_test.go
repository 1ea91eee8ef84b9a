// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-churn-fighter/internal/config"
	"github.com/MKhiriev/go-churn-fighter/internal/handler"
	httpHandler "github.com/MKhiriev/go-churn-fighter/internal/handler/http"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/service"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()

	services, err := service.NewSandboxServices(&config.SandboxConfig{
		OfferKeyIdentifier: "KEY1",
		SubmissionTTL:      time.Minute,
	}, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)

	return &handler.Handlers{
		HTTP: httpHandler.NewHandler(services, httpHandler.Credentials{APIKey: "k", Secret: "s"}, logger.Nop()),
	}
}

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer(t *testing.T) {
	cfg := &config.SandboxConfig{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}

	t.Run("creates http server", func(t *testing.T) {
		srv, err := NewServer(newTestHandlers(t), cfg, logger.Nop())
		require.NoError(t, err)

		s := srv.(*server)
		assert.Equal(t, "127.0.0.1:0", s.http.server.Addr)
		assert.Equal(t, time.Second, s.http.server.ReadHeaderTimeout)
	})

	t.Run("no http handler", func(t *testing.T) {
		srv, err := NewServer(&handler.Handlers{}, cfg, logger.Nop())
		assert.ErrorIs(t, err, errNoHTTPHandler)
		assert.Nil(t, srv)
	})
}

func TestServer_Run(t *testing.T) {
	t.Run("serves until cancelled", func(t *testing.T) {
		addr := freeAddress(t)
		srv, err := NewServer(newTestHandlers(t), &config.SandboxConfig{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx) }()

		require.Eventually(t, func() bool {
			resp, err := http.Get("http://" + addr + "/version")
			if err != nil {
				return false
			}
			resp.Body.Close()
			return resp.StatusCode == http.StatusOK
		}, 5*time.Second, 20*time.Millisecond)

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("returns bind error", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		srv, err := NewServer(newTestHandlers(t), &config.SandboxConfig{HTTPAddress: l.Addr().String(), RequestTimeout: time.Second}, logger.Nop())
		require.NoError(t, err)

		assert.Error(t, srv.Run(context.Background()))
	})
}
