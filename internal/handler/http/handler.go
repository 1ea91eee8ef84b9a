// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/service"
)

// Credentials are the values every authenticated request must carry in the
// apiKey and X-CF-header headers.
type Credentials struct {
	APIKey string
	Secret string
}

type Handler struct {
	services    *service.SandboxServices
	credentials Credentials

	logger *logger.Logger
}

func NewHandler(services *service.SandboxServices, credentials Credentials, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		credentials: credentials,
		logger:      logger,
	}
}
