// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memoryPreferenceStorage struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemoryPreferenceStorage returns a process-local [PreferenceStorage].
// Values are lost when the process exits.
func NewMemoryPreferenceStorage() PreferenceStorage {
	return &memoryPreferenceStorage{values: make(map[string]string)}
}

func (m *memoryPreferenceStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStorageClosed
	}
	value, ok := m.values[key]
	if !ok {
		return "", ErrPreferenceNotFound
	}
	return value, nil
}

func (m *memoryPreferenceStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageClosed
	}
	m.values[key] = value
	return nil
}

func (m *memoryPreferenceStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageClosed
	}
	delete(m.values, key)
	return nil
}

func (m *memoryPreferenceStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
