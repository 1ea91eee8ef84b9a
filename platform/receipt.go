// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// FileReceiptProvider reads the receipt from a file on every call.
type FileReceiptProvider struct {
	path string
}

// NewFileReceiptProvider returns a provider reading path. A missing or empty
// file means no receipt.
func NewFileReceiptProvider(path string) *FileReceiptProvider {
	return &FileReceiptProvider{path: path}
}

func (p *FileReceiptProvider) Receipt() ([]byte, error) {
	if p.path == "" {
		return nil, ErrNoReceipt
	}

	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoReceipt
	}
	if err != nil {
		return nil, fmt.Errorf("read receipt: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoReceipt
	}

	return data, nil
}

// MemoryReceiptProvider holds a receipt in memory.
type MemoryReceiptProvider struct {
	mu      sync.RWMutex
	receipt []byte
}

// NewMemoryReceiptProvider returns a provider holding receipt; nil means
// no receipt.
func NewMemoryReceiptProvider(receipt []byte) *MemoryReceiptProvider {
	return &MemoryReceiptProvider{receipt: receipt}
}

// SetReceipt replaces the held receipt.
func (p *MemoryReceiptProvider) SetReceipt(receipt []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.receipt = receipt
}

func (p *MemoryReceiptProvider) Receipt() ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.receipt) == 0 {
		return nil, ErrNoReceipt
	}
	return append([]byte(nil), p.receipt...), nil
}
