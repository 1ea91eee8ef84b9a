// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPreferenceStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryPreferenceStorage()

	_, err := s.Get(ctx, UserIDKey)
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	require.NoError(t, s.Set(ctx, UserIDKey, "first"))
	require.NoError(t, s.Set(ctx, UserIDKey, "second"))

	got, err := s.Get(ctx, UserIDKey)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	require.NoError(t, s.Delete(ctx, UserIDKey))
	require.NoError(t, s.Delete(ctx, UserIDKey))
	_, err = s.Get(ctx, UserIDKey)
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Set(ctx, UserIDKey, "x"), ErrStorageClosed)
	_, err = s.Get(ctx, UserIDKey)
	assert.ErrorIs(t, err, ErrStorageClosed)
}

func TestMemoryPreferenceStorage_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryPreferenceStorage()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, UserHashKey, "v")
			_, _ = s.Get(ctx, UserHashKey)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, UserHashKey)
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
