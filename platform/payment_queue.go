// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-churn-fighter/models"
)

// MemoryPaymentQueue is an in-process [PaymentQueue]. Publish delivers a
// batch synchronously to every registered observer.
type MemoryPaymentQueue struct {
	mu        sync.RWMutex
	observers []TransactionObserver
}

// NewMemoryPaymentQueue returns an empty queue.
func NewMemoryPaymentQueue() *MemoryPaymentQueue {
	return &MemoryPaymentQueue{}
}

// AddTransactionObserver registers observer; registering it twice is a no-op.
func (q *MemoryPaymentQueue) AddTransactionObserver(observer TransactionObserver) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if slices.Contains(q.observers, observer) {
		return
	}
	q.observers = append(q.observers, observer)
}

func (q *MemoryPaymentQueue) RemoveTransactionObserver(observer TransactionObserver) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.observers = slices.DeleteFunc(q.observers, func(o TransactionObserver) bool {
		return o == observer
	})
}

// Observers returns the number of registered observers.
func (q *MemoryPaymentQueue) Observers() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.observers)
}

// Publish hands batch to every observer registered at call time.
func (q *MemoryPaymentQueue) Publish(batch ...models.TransactionRecord) {
	q.mu.RLock()
	observers := slices.Clone(q.observers)
	q.mu.RUnlock()

	for _, o := range observers {
		o.UpdatedTransactions(batch)
	}
}
