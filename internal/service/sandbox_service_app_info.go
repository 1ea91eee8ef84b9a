// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-churn-fighter/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

// GetAppVersion returns "<version> (<commit>, <date>)".
func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.buildInfo.String()
}
