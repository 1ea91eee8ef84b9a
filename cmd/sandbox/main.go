// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-churn-fighter/internal/config"
	"github.com/MKhiriev/go-churn-fighter/internal/handler"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/server"
	"github.com/MKhiriev/go-churn-fighter/internal/service"
	"github.com/MKhiriev/go-churn-fighter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("churnfighter-sandbox")
	cfg, err := config.GetSandboxConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("offer_key_id", cfg.OfferKeyIdentifier).
		Dur("submission_ttl", cfg.SubmissionTTL).
		Msg("received configs")

	services, err := service.NewSandboxServices(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("sandbox stopped with error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
