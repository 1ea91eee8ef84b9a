// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable replaces build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags. It is
// printed by both binaries and served on the sandbox /version endpoint.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo fills every empty value with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// String formats the metadata as "<version> (<commit>, <date>)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", orNotAvailable(a.Version), orNotAvailable(a.Commit), orNotAvailable(a.Date))
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
