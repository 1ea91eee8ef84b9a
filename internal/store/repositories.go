// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "time"

// SandboxStorages groups the storages of the sandbox backend.
type SandboxStorages struct {
	SubmissionStorage SubmissionStorage
}

// NewSandboxStorages keeps submissions in memory, expiring users idle for
// longer than submissionTTL.
func NewSandboxStorages(submissionTTL time.Duration) *SandboxStorages {
	return &SandboxStorages{
		SubmissionStorage: NewSubmissionRecorder(submissionTTL),
	}
}
