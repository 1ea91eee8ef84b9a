// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/rs/zerolog"
)

// DefaultEventBuffer is the capacity of the transaction event stream.
const DefaultEventBuffer = 32

// FatalHandler receives integration errors the SDK cannot recover from.
type FatalHandler func(err error)

// DefaultFatalHandler logs err at fatal level. Unlike Logger.Fatal it does
// not terminate the host process.
func DefaultFatalHandler(log *logger.Logger) FatalHandler {
	return func(err error) {
		log.WithLevel(zerolog.FatalLevel).Err(err).
			Str("func", "transactionObserver").
			Msg("transaction observer received a state it does not handle")
	}
}

type transactionObserver struct {
	sink   TransactionSink
	fatal  FatalHandler
	events chan models.TransactionEvent
	logger *logger.Logger
}

// NewTransactionObserver returns a [TransactionObserverService] forwarding
// side effects to sink. A nil fatal handler falls back to
// [DefaultFatalHandler]; a non-positive buffer to [DefaultEventBuffer].
func NewTransactionObserver(sink TransactionSink, fatal FatalHandler, buffer int, logger *logger.Logger) TransactionObserverService {
	if fatal == nil {
		fatal = DefaultFatalHandler(logger)
	}
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}

	return &transactionObserver{
		sink:   sink,
		fatal:  fatal,
		events: make(chan models.TransactionEvent, buffer),
		logger: logger,
	}
}

// UpdatedTransactions implements [platform.TransactionObserver].
func (o *transactionObserver) UpdatedTransactions(batch []models.TransactionRecord) {
	if err := o.ProcessBatch(context.Background(), batch); err != nil {
		o.fatal(err)
	}
}

func (o *transactionObserver) ProcessBatch(ctx context.Context, batch []models.TransactionRecord) error {
	var errs []error
	for _, tx := range batch {
		if err := o.process(ctx, tx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (o *transactionObserver) process(ctx context.Context, tx models.TransactionRecord) error {
	event := models.TransactionEvent{TransactionID: tx.TransactionID, State: tx.State}

	if tx.Original != nil && tx.Original.TransactionID != "" {
		event.OriginalTransactionID = tx.Original.TransactionID
		o.sink.LinkOriginalTransaction(ctx, tx.Original.TransactionID)
	}

	if !tx.State.Valid() {
		return fmt.Errorf("%w: transaction %q in state %s", ErrUnknownTransactionState, tx.TransactionID, tx.State)
	}

	switch tx.State {
	case models.TransactionPurchased, models.TransactionRestored:
		o.logTransaction(tx, "transaction completed, syncing receipt")
		o.sink.SyncReceipt(ctx)
	default:
		o.logTransaction(tx, "transaction updated")
	}

	o.emit(event)
	return nil
}

func (o *transactionObserver) logTransaction(tx models.TransactionRecord, msg string) {
	o.logger.Debug().
		Str("func", "transactionObserver.process").
		Str("transaction_id", tx.TransactionID).
		Stringer("state", tx.State).
		Bool("terminal", tx.State.IsTerminal()).
		Msg(msg)
}

func (o *transactionObserver) emit(event models.TransactionEvent) {
	select {
	case o.events <- event:
	default:
		o.logger.Warn().
			Str("func", "transactionObserver.emit").
			Str("transaction_id", event.TransactionID).
			Msg("event stream full, event dropped")
	}
}

func (o *transactionObserver) Events() <-chan models.TransactionEvent {
	return o.events
}
