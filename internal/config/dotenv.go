// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// parseDotEnv reads the .env file at path and maps its variables onto a
// [StructuredConfig] using the same tags as the process environment.
//
// When required is false a missing file yields an empty config and no error.
func parseDotEnv(path string, required bool) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	if err = parseEnvMap(cfg, vars); err != nil {
		return nil, err
	}

	return cfg, nil
}

// dotEnvPath resolves which .env file to read and whether it must exist.
func dotEnvPath() (string, bool) {
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path, true
	}
	return DefaultDotEnvFile, false
}
