// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "abc123")

	assert.Equal(t, "1.2.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "1.2.0 (abc123, N/A)", info.String())
	assert.Equal(t, "N/A (N/A, N/A)", AppBuildInfo{}.String())
}
