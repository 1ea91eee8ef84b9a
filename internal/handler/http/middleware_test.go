// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/service"
	"github.com/MKhiriev/go-churn-fighter/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCredentials = Credentials{APIKey: "app-key", Secret: "app-secret"}

func newBareHandler(l *logger.Logger) *Handler {
	return NewHandler(&service.SandboxServices{}, testCredentials, l)
}

func TestAuth(t *testing.T) {
	h := newBareHandler(logger.Nop())

	tests := []struct {
		name       string
		apiKey     string
		secret     string
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{name: "missing headers", wantStatus: http.StatusUnauthorized, wantBody: ErrMissingCredentialHeaders.Error()},
		{name: "missing secret", apiKey: "app-key", wantStatus: http.StatusUnauthorized, wantBody: ErrMissingCredentialHeaders.Error()},
		{name: "wrong api key", apiKey: "other", secret: "app-secret", wantStatus: http.StatusUnauthorized, wantBody: ErrInvalidCredentials.Error()},
		{name: "wrong secret", apiKey: "app-key", secret: "other", wantStatus: http.StatusUnauthorized, wantBody: ErrInvalidCredentials.Error()},
		{name: "valid", apiKey: "app-key", secret: "app-secret", wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				apiKey, ok := utils.GetAPIKeyFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, "app-key", apiKey)
			})

			req := httptest.NewRequest(http.MethodPost, "/user/u1", nil)
			if tt.apiKey != "" {
				req.Header.Set(apiKeyHeader, tt.apiKey)
			}
			if tt.secret != "" {
				req.Header.Set(secretHeader, tt.secret)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}

func TestWithTraceID(t *testing.T) {
	h := newBareHandler(logger.Nop())

	t.Run("generates trace id", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotNil(t, logger.FromRequest(r))
		})
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

		assert.Len(t, rec.Header().Get(traceIDHeader), 36)
	})

	t.Run("reuses incoming trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		req.Header.Set(traceIDHeader, "trace-42")
		rec := httptest.NewRecorder()

		h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	})
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := newBareHandler(logger.Nop())
	h.logger = logger.NewWriterLogger("test", &buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("abc"))
	})
	req := httptest.NewRequest(http.MethodPost, "/receipt/u1", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rec := httptest.NewRecorder()

	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/receipt/u1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, 3, entry["size"])
	assert.Equal(t, "trace-1", entry["trace_id"])
}

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip(t *testing.T) {
	t.Run("compresses response", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("hello"))
		})
		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(next).ServeHTTP(rec, req)

		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(body))
	})

	t.Run("leaves empty response untouched", func(t *testing.T) {
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(next).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("inflates request", func(t *testing.T) {
		var got string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			got = string(body)
			assert.Empty(t, r.Header.Get("Content-Encoding"))
		})
		req := httptest.NewRequest(http.MethodPost, "/receipt/u1", bytes.NewReader(gzipBytes(t, `{"receipt":"cmVjZWlwdA=="}`)))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"receipt":"cmVjZWlwdA=="}`, got)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
	})

	t.Run("rejects broken gzip body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/receipt/u1", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("next must not be called")
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)

	assert.Equal(t, http.StatusOK, sr.status)

	sr.WriteHeader(http.StatusTeapot)
	_, err := sr.Write([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, sr.status)
	assert.Equal(t, 3, sr.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
