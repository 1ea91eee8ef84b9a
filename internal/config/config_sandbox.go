// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// SandboxConfig is the configuration view of the sandbox backend.
type SandboxConfig struct {
	// APIKey and Secret are the credentials every request must present.
	APIKey string
	Secret string

	HTTPAddress        string
	RequestTimeout     time.Duration
	OfferKeyIdentifier string
	SubmissionTTL      time.Duration
}

// GetSandboxConfig builds and validates the sandbox config view.
func GetSandboxConfig(args []string) (*SandboxConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	sandboxCfg := &SandboxConfig{
		APIKey:             cfg.App.APIKey,
		Secret:             cfg.App.Secret,
		HTTPAddress:        cfg.Server.HTTPAddress,
		RequestTimeout:     cfg.Server.RequestTimeout,
		OfferKeyIdentifier: cfg.Server.OfferKeyIdentifier,
		SubmissionTTL:      cfg.Server.SubmissionTTL,
	}

	return sandboxCfg, sandboxCfg.validate()
}
