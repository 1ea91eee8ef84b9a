// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
)

// validate checks the merged [StructuredConfig] for values no binary can
// run with. Role-specific rules live on the config views.
func (cfg *StructuredConfig) validate() error {
	var errs []error
	if cfg.Workers.DispatchWorkers < 0 || cfg.Workers.QueueSize < 0 || cfg.Workers.ResyncInterval < 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}
	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.DispatchWorkers <= 0 || cfg.Workers.QueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.SuiteName == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *SandboxConfig) validate() error {
	if cfg.APIKey == "" || cfg.Secret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 || cfg.SubmissionTTL <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
