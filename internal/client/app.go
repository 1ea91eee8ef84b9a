// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-churn-fighter/churnfighter"
	"github.com/MKhiriev/go-churn-fighter/internal/config"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/MKhiriev/go-churn-fighter/platform"
)

// Usage lists the commands understood by [App].
const Usage = `commands:
  id                                   print the installation user id
  sync [receipt-file]                  upload user state and receipt
  email <address>                      set the user email
  property <key> <value>               set a custom user property
  decode <base64>                      decode an action payload
  link <url>                           decode an action from a universal link
  purchase <txid> <state> [originalId] publish a transaction update
  signature <productId> <offerId>      request a promotional offer signature`

type command struct {
	minArgs, maxArgs int
	// receiptArg is the index of an optional receipt file argument, or -1.
	receiptArg int
	run        func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"id":        {minArgs: 0, maxArgs: 0, receiptArg: -1, run: (*App).runID},
	"sync":      {minArgs: 0, maxArgs: 1, receiptArg: 0, run: (*App).runSync},
	"email":     {minArgs: 1, maxArgs: 1, receiptArg: -1, run: (*App).runEmail},
	"property":  {minArgs: 2, maxArgs: 2, receiptArg: -1, run: (*App).runProperty},
	"decode":    {minArgs: 1, maxArgs: 1, receiptArg: -1, run: (*App).runDecode},
	"link":      {minArgs: 1, maxArgs: 1, receiptArg: -1, run: (*App).runLink},
	"purchase":  {minArgs: 2, maxArgs: 3, receiptArg: -1, run: (*App).runPurchase},
	"signature": {minArgs: 2, maxArgs: 2, receiptArg: -1, run: (*App).runSignature},
}

type App struct {
	cfg     *config.ClientConfig
	options []churnfighter.Option
	out     io.Writer
	logger  *logger.Logger

	sdk   *churnfighter.ChurnFighter
	queue *platform.MemoryPaymentQueue

	mu       sync.Mutex
	fatalErr error
}

// NewApp prepares a harness executing cfg.Args. Extra options are applied
// after the ones derived from cfg.
func NewApp(cfg *config.ClientConfig, out io.Writer, logger *logger.Logger, opts ...churnfighter.Option) (*App, error) {
	if len(cfg.Args) == 0 {
		return nil, ErrNoCommand
	}
	if _, ok := commands[cfg.Args[0]]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cfg.Args[0])
	}

	return &App{
		cfg:     cfg,
		options: opts,
		out:     out,
		logger:  logger,
		queue:   platform.NewMemoryPaymentQueue(),
	}, nil
}

func (a *App) Run(ctx context.Context) (err error) {
	name, args := a.cfg.Args[0], a.cfg.Args[1:]
	cmd := commands[name]
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return fmt.Errorf("%w for %s", ErrWrongArguments, name)
	}

	receipts := platform.ReceiptProvider(platform.NewMemoryReceiptProvider(nil))
	if cmd.receiptArg >= 0 && len(args) > cmd.receiptArg {
		receipts = platform.NewFileReceiptProvider(args[cmd.receiptArg])
	}

	opts := append(churnfighter.OptionsFromConfig(a.cfg),
		churnfighter.WithLogger(a.logger.Logger),
		churnfighter.WithFatalHandler(a.recordFatal),
	)
	opts = append(opts, a.options...)

	a.sdk = churnfighter.New(platform.Platform{
		PaymentQueue:    a.queue,
		ReceiptProvider: receipts,
	}, opts...)

	if err = a.sdk.Initialize(a.cfg.App.APIKey, a.cfg.App.Secret); err != nil {
		return fmt.Errorf("initialize sdk: %w", err)
	}
	defer func() {
		err = errors.Join(err, a.sdk.Teardown())
	}()

	a.logger.Debug().Str("func", "*App.Run").Str("command", name).Strs("args", args).Msg("running command")

	return cmd.run(a, ctx, args)
}

func (a *App) runID(ctx context.Context, _ []string) error {
	userID, err := a.sdk.UserID(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, userID)
	return nil
}

func (a *App) runSync(ctx context.Context, _ []string) error {
	fmt.Fprintf(a.out, "user state queued: %t\n", a.sdk.MaybeSendUserState(ctx))
	fmt.Fprintf(a.out, "receipt queued: %t\n", a.sdk.MaybeSendReceipt(ctx))
	return nil
}

func (a *App) runEmail(_ context.Context, args []string) error {
	a.sdk.SetUserEmail(args[0])
	fmt.Fprintln(a.out, "email set")
	return nil
}

func (a *App) runProperty(_ context.Context, args []string) error {
	a.sdk.SetUserProperty(args[0], args[1])
	fmt.Fprintf(a.out, "property %s set\n", args[0])
	return nil
}

func (a *App) runDecode(_ context.Context, args []string) error {
	action, ok := a.sdk.ActionFromNotification(models.NotificationContent{
		models.OfferPayloadKey:   args[0],
		models.PaymentPayloadKey: args[0],
	})
	if !ok {
		return ErrNoAction
	}
	return a.printJSON(actionView{Type: action.Type(), Action: action})
}

func (a *App) runLink(_ context.Context, args []string) error {
	u, err := url.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse link: %w", err)
	}

	action, ok := a.sdk.ActionFromUniversalLink(models.UserActivity{
		ActivityType: models.ActivityTypeBrowsingWeb,
		WebpageURL:   u,
	})
	if !ok {
		return ErrNoAction
	}
	return a.printJSON(actionView{Type: action.Type(), Action: action})
}

// runPurchase publishes one transaction update. The state is a name
// ("purchased") or a raw number; unknown numbers reach the SDK unchanged.
func (a *App) runPurchase(_ context.Context, args []string) error {
	state, err := parseState(args[1])
	if err != nil {
		return err
	}

	record := models.TransactionRecord{TransactionID: args[0], State: state}
	if len(args) == 3 {
		record.Original = &models.OriginalTransaction{TransactionID: args[2]}
	}

	a.queue.Publish(record)

	if err = a.fatal(); err != nil {
		return err
	}

	for {
		select {
		case event := <-a.sdk.Events():
			fmt.Fprintf(a.out, "transaction %s: %s\n", event.TransactionID, event.State)
		default:
			return nil
		}
	}
}

func (a *App) runSignature(ctx context.Context, args []string) error {
	signature, err := a.sdk.PrepareOfferSignature(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return a.printJSON(signature)
}

type actionView struct {
	Type   models.ActionType `json:"type"`
	Action models.Action     `json:"action"`
}

func (a *App) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func (a *App) recordFatal(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fatalErr = errors.Join(a.fatalErr, err)
}

func (a *App) fatal() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.fatalErr
}

func parseState(raw string) (models.TransactionState, error) {
	if state, ok := models.ParseTransactionState(raw); ok {
		return state, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse transaction state %q: %w", raw, err)
	}
	return models.TransactionState(n), nil
}
