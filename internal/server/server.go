// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"

	"github.com/MKhiriev/go-churn-fighter/internal/config"
	"github.com/MKhiriev/go-churn-fighter/internal/handler"
	"github.com/MKhiriev/go-churn-fighter/internal/logger"
)

type server struct {
	http   *httpServer
	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg *config.SandboxConfig, log *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}

	log.Info().Str("func", "server.NewServer").Str("address", cfg.HTTPAddress).Msg("creating sandbox server")

	return &server{
		http:   newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, cfg.RequestTimeout, log),
		logger: log,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- s.http.listen()
	}()

	s.logger.Info().Str("address", s.http.server.Addr).Msg("sandbox is listening")

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("stop requested, draining connections")
	if err := s.http.shutdown(); err != nil {
		return err
	}
	<-listenErr

	s.logger.Info().Msg("sandbox stopped")
	return nil
}
