// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
)

type job struct {
	name string
	task Task
}

// Dispatcher executes tasks on a fixed pool of goroutines fed by a bounded
// queue. Dispatch never blocks: when the queue is full the task is dropped
// with a warning. Tasks are attempted once.
type Dispatcher struct {
	queue   chan job
	workers int
	logger  *logger.Logger

	mu      sync.RWMutex
	running bool
	stopped bool
	wg      sync.WaitGroup
}

var (
	_ Worker         = (*Dispatcher)(nil)
	_ Stopper        = (*Dispatcher)(nil)
	_ TaskDispatcher = (*Dispatcher)(nil)
)

// NewDispatcher creates an idle dispatcher with the given pool and queue
// sizes. Values below one are raised to one. Tasks dispatched before Run are
// queued and executed once Run is called.
func NewDispatcher(workers, queueSize int, logger *logger.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	return &Dispatcher{
		queue:   make(chan job, queueSize),
		workers: workers,
		logger:  logger,
	}
}

// Run implements [Worker]. It starts the pool; repeated calls and calls after
// Stop are no-ops.
func (d *Dispatcher) Run() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running || d.stopped {
		return
	}
	d.running = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.loop()
	}
}

// Dispatch implements [TaskDispatcher].
func (d *Dispatcher) Dispatch(name string, task Task) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.logger.Warn().Str("func", "Dispatcher.Dispatch").Str("task", name).Msg("dispatcher stopped, task dropped")
		return false
	}

	select {
	case d.queue <- job{name: name, task: task}:
		return true
	default:
		d.logger.Warn().Str("func", "Dispatcher.Dispatch").Str("task", name).Msg("dispatch queue is full, task dropped")
		return false
	}
}

// Stop implements [Stopper]. It refuses new tasks, lets the pool drain the
// queue and blocks until every goroutine has exited. A dispatcher that was
// never started runs the queued tasks on the calling goroutine.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	running := d.running
	close(d.queue)
	d.mu.Unlock()

	if !running {
		for j := range d.queue {
			d.execute(j)
		}
		return
	}
	d.wg.Wait()
}

func (d *Dispatcher) loop() {
	defer d.wg.Done()

	for j := range d.queue {
		d.execute(j)
	}
}

func (d *Dispatcher) execute(j job) {
	err := runTask(context.Background(), j.task)
	if err != nil {
		d.logger.Warn().Err(err).Str("func", "Dispatcher.execute").Str("task", j.name).Msg("task failed")
		return
	}
	d.logger.Debug().Str("func", "Dispatcher.execute").Str("task", j.name).Msg("task done")
}

// InlineDispatcher runs every task on the caller's goroutine. It keeps the
// dispatch contract (errors are logged, never returned) and makes the
// ordering of side effects deterministic.
type InlineDispatcher struct {
	logger *logger.Logger
}

// NewInlineDispatcher returns an [InlineDispatcher] logging to logger.
func NewInlineDispatcher(logger *logger.Logger) *InlineDispatcher {
	return &InlineDispatcher{logger: logger}
}

// Dispatch implements [TaskDispatcher].
func (d *InlineDispatcher) Dispatch(name string, task Task) bool {
	if err := runTask(context.Background(), task); err != nil {
		d.logger.Warn().Err(err).Str("func", "InlineDispatcher.Dispatch").Str("task", name).Msg("task failed")
	}
	return true
}

func runTask(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	return task(ctx)
}
