// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/patrickmn/go-cache"
)

type submissionRecorder struct {
	cache *cache.Cache
	ttl   time.Duration
	now   func() time.Time

	// mu serialises read-modify-write of a user's entry.
	mu sync.Mutex
}

// NewSubmissionRecorder returns a [SubmissionStorage] forgetting a user ttl
// after their last submission.
func NewSubmissionRecorder(ttl time.Duration) SubmissionStorage {
	return &submissionRecorder{
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (r *submissionRecorder) SaveUserState(_ context.Context, userID string, state models.UserState) error {
	r.update(userID, func(s *models.UserSubmissions) {
		state.CustomInfo = state.CustomInfo.Clone()
		s.UserState = &state
		s.StateUploads++
	})
	return nil
}

func (r *submissionRecorder) AppendReceipt(_ context.Context, userID string, receipt string) error {
	r.update(userID, func(s *models.UserSubmissions) {
		s.Receipts = append(s.Receipts, receipt)
	})
	return nil
}

func (r *submissionRecorder) AppendOfferRequest(_ context.Context, userID string, req models.OfferSignatureRequest) error {
	r.update(userID, func(s *models.UserSubmissions) {
		s.OfferRequests = append(s.OfferRequests, req)
	})
	return nil
}

func (r *submissionRecorder) Get(_ context.Context, userID string) (models.UserSubmissions, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.cache.Get(userID)
	if !ok {
		return models.UserSubmissions{}, ErrSubmissionsNotFound
	}

	return cloneSubmissions(v.(*models.UserSubmissions)), nil
}

func (r *submissionRecorder) update(userID string, apply func(*models.UserSubmissions)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := &models.UserSubmissions{UserID: userID}
	if v, ok := r.cache.Get(userID); ok {
		entry = v.(*models.UserSubmissions)
	}

	apply(entry)
	entry.UpdatedAt = r.now().UTC()

	// every submission restarts the ttl
	r.cache.Set(userID, entry, r.ttl)
}

func cloneSubmissions(s *models.UserSubmissions) models.UserSubmissions {
	out := *s
	if s.UserState != nil {
		state := *s.UserState
		state.CustomInfo = state.CustomInfo.Clone()
		out.UserState = &state
	}
	out.Receipts = slices.Clone(s.Receipts)
	out.OfferRequests = slices.Clone(s.OfferRequests)
	return out
}
