// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/hex"
	"strings"
	"sync"

	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/MKhiriev/go-churn-fighter/platform"
	"golang.org/x/text/language"
)

type userStateService struct {
	env platform.Environment

	mu                    sync.RWMutex
	email                 string
	locale                string
	deviceToken           string
	originalTransactionID string
	customInfo            models.CustomInfo
}

// NewUserStateService returns a [UserStateService] that queries env on every
// snapshot. A nil env reports nothing.
func NewUserStateService(env platform.Environment) UserStateService {
	if env == nil {
		env = platform.StaticEnvironment{}
	}
	return &userStateService{env: env}
}

func (s *userStateService) SetEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = email
}

func (s *userStateService) SetLocale(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale
}

func (s *userStateService) SetDeviceToken(token []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deviceToken = hex.EncodeToString(token)
}

func (s *userStateService) SetUserProperty(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customInfo == nil {
		s.customInfo = make(models.CustomInfo)
	}
	s.customInfo.Upsert(key, value)
}

func (s *userStateService) SetOriginalTransactionID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.originalTransactionID = id
}

func (s *userStateService) Snapshot() models.UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	locale := s.locale
	if locale == "" {
		locale = s.env.Locale()
	}

	return models.UserState{
		Locale:                models.StringPtr(CanonicalLocale(locale)),
		OSVersion:             models.StringPtr(s.env.OSVersion()),
		Model:                 models.StringPtr(s.env.Model()),
		IdentifierForVendor:   models.StringPtr(s.env.IdentifierForVendor()),
		TimeZone:              models.StringPtr(s.env.TimeZone()),
		Email:                 models.StringPtr(s.email),
		DeviceToken:           models.StringPtr(s.deviceToken),
		OriginalTransactionID: models.StringPtr(s.originalTransactionID),
		CustomInfo:            s.customInfo.Clone(),
	}
}

// CanonicalLocale returns the BCP 47 form of a locale identifier, accepting
// POSIX underscores ("en_US" becomes "en-US"). Values that do not parse are
// returned unchanged.
func CanonicalLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return locale
	}
	return tag.String()
}
