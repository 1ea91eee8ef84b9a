// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/utils"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/go-resty/resty/v2"
)

// Header names the backend authenticates requests with.
const (
	HeaderAPIKey = "apiKey"
	HeaderSecret = "X-CF-header"
)

// Credentials identify the host application on the backend.
type Credentials struct {
	APIKey string
	Secret string
}

// HTTPConfig configures [NewHTTPServerAdapter].
type HTTPConfig struct {
	// BaseURL is the backend root; a missing scheme defaults to http.
	BaseURL string
	// RequestTimeout bounds each request; zero leaves resty's default.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *utils.HTTPClient
	creds  Credentials

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates cfg.BaseURL and configures the underlying HTTP
// client with the resolved base URL, the request timeout and the credential
// headers.
//
// Returns an error if the base URL is empty or cannot be parsed, or if either
// credential is empty.
func NewHTTPServerAdapter(cfg HTTPConfig, creds Credentials, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if creds.APIKey == "" || creds.Secret == "" {
		return nil, ErrMissingCredentials
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.
		SetHeader(HeaderAPIKey, creds.APIKey).
		SetHeader(HeaderSecret, creds.Secret)

	return &httpServerAdapter{client: client, creds: creds, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendUserState implements [ServerAdapter]. It POSTs the JSON-encoded state
// to POST /user/{userID}.
func (h *httpServerAdapter) SendUserState(ctx context.Context, userID string, state models.UserState) error {
	req, err := h.request(ctx, userID)
	if err != nil {
		return err
	}

	resp, err := req.SetBody(state).Post("/user/{userId}")
	if err != nil {
		return fmt.Errorf("send user state request: %w", err)
	}

	return mapHTTPError(resp)
}

// SendReceipt implements [ServerAdapter]. It POSTs {"receipt": "..."} to
// POST /receipt/{userID}.
func (h *httpServerAdapter) SendReceipt(ctx context.Context, userID string, receipt models.ReceiptRequest) error {
	req, err := h.request(ctx, userID)
	if err != nil {
		return err
	}

	resp, err := req.SetBody(receipt).Post("/receipt/{userId}")
	if err != nil {
		return fmt.Errorf("send receipt request: %w", err)
	}

	return mapHTTPError(resp)
}

// RequestOfferSignature implements [ServerAdapter]. It POSTs the offer to
// POST /subscriptionOfferSignature/{userID} and decodes the signature the
// backend returns.
func (h *httpServerAdapter) RequestOfferSignature(ctx context.Context, userID string, offer models.OfferSignatureRequest) (models.OfferSignature, error) {
	req, err := h.request(ctx, userID)
	if err != nil {
		return models.OfferSignature{}, err
	}

	resp, err := req.SetBody(offer).Post("/subscriptionOfferSignature/{userId}")
	if err != nil {
		return models.OfferSignature{}, fmt.Errorf("offer signature request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OfferSignature{}, err
	}

	var signature models.OfferSignature
	if err = json.Unmarshal(resp.Body(), &signature); err != nil {
		return models.OfferSignature{}, fmt.Errorf("decode offer signature response: %w", err)
	}

	return signature, nil
}

func (h *httpServerAdapter) request(ctx context.Context, userID string) (*resty.Request, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	return h.client.R().
		SetContext(ctx).
		SetPathParam("userId", userID), nil
}
