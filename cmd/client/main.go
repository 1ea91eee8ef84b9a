// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-churn-fighter/internal/client"
	"github.com/MKhiriev/go-churn-fighter/internal/config"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("churnfighter-client", cfg.App.LogPath)

	app, err := client.NewApp(cfg, os.Stdout, log)
	if err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintf(os.Stderr, "%v\n%s\n", err, client.Usage)
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

// printBuildInfo writes to stderr so command output stays machine-readable.
func printBuildInfo(info models.AppBuildInfo) {
	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.Version)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.Date)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.Commit)
}
