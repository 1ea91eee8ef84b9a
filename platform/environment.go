// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"os"
	"runtime"
	"strings"
)

const (
	localtimePath = "/etc/localtime"
	zoneinfoDir   = "zoneinfo/"
)

// HostEnvironment reads device information from the running process.
type HostEnvironment struct {
	// VendorID is reported as the vendor-scoped identifier; hosts without
	// such a concept leave it empty.
	VendorID string

	getenv   func(string) string
	readlink func(string) (string, error)
}

// NewHostEnvironment returns an [Environment] backed by the process
// environment and the Go runtime.
func NewHostEnvironment() *HostEnvironment {
	return &HostEnvironment{getenv: os.Getenv, readlink: os.Readlink}
}

// Locale returns the POSIX locale from LC_ALL, LC_MESSAGES or LANG, without
// the codeset and modifier (e.g. "en_US.UTF-8" yields "en_US"). The C and
// POSIX locales report as unknown.
func (e *HostEnvironment) Locale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := e.getenv(name)
		if value == "" {
			continue
		}
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		if value == "C" || value == "POSIX" {
			return ""
		}
		return value
	}
	return ""
}

// OSVersion returns the operating system name.
func (e *HostEnvironment) OSVersion() string {
	return runtime.GOOS
}

// Model returns the processor architecture.
func (e *HostEnvironment) Model() string {
	return runtime.GOARCH
}

func (e *HostEnvironment) IdentifierForVendor() string {
	return e.VendorID
}

// TimeZone returns the IANA name of the local time zone: TZ first, then the
// zoneinfo entry /etc/localtime links to. It returns "" when neither names a
// zone.
func (e *HostEnvironment) TimeZone() string {
	if tz := strings.TrimPrefix(e.getenv("TZ"), ":"); tz != "" {
		return tz
	}
	if e.readlink == nil {
		return ""
	}

	target, err := e.readlink(localtimePath)
	if err != nil {
		return ""
	}
	i := strings.LastIndex(target, zoneinfoDir)
	if i < 0 {
		return ""
	}
	return target[i+len(zoneinfoDir):]
}

// StaticEnvironment reports fixed values.
type StaticEnvironment struct {
	LocaleValue              string
	OSVersionValue           string
	ModelValue               string
	IdentifierForVendorValue string
	TimeZoneValue            string
}

func (s StaticEnvironment) Locale() string              { return s.LocaleValue }
func (s StaticEnvironment) OSVersion() string           { return s.OSVersionValue }
func (s StaticEnvironment) Model() string               { return s.ModelValue }
func (s StaticEnvironment) IdentifierForVendor() string { return s.IdentifierForVendorValue }
func (s StaticEnvironment) TimeZone() string            { return s.TimeZoneValue }
