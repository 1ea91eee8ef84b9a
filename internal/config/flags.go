// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args and returns the populated
// config. Positional arguments after the flags end up in Args.
//
// Flags:
//
//	-a sandbox address in format [host]:[port]
//	-api backend base URL used by the SDK
//	-d SQLite DSN
//	-c/-config json file path with configs
//	-env .env file path
//	-api-key application API key
//	-secret shared secret
//	-suite preference suite name
//	-log log file path
//	-request-timeout outbound request timeout (e.g. "15s")
//	-workers dispatcher goroutines
//	-queue dispatcher queue size
//	-resync-interval background resync period (e.g. "10m")
//	-offer-key-id sandbox offer key identifier
func ParseFlags(args []string) (*StructuredConfig, error) {
	var sandboxAddress NetAddress
	var apiAddress string
	var databaseDSN string
	var jsonConfigPath string
	var envFilePath string
	var apiKey, secret string
	var suiteName string
	var logPath string
	var requestTimeout, resyncInterval time.Duration
	var workers, queueSize int
	var offerKeyID string

	fs := flag.NewFlagSet("churnfighter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&sandboxAddress, "a", "Sandbox net address host:port")
	fs.StringVar(&apiAddress, "api", "", "Backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env", "", ".env file path")
	fs.StringVar(&apiKey, "api-key", "", "Application API key")
	fs.StringVar(&secret, "secret", "", "Shared secret")
	fs.StringVar(&suiteName, "suite", "", "Preference suite name")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.IntVar(&workers, "workers", 0, "Dispatcher goroutines")
	fs.IntVar(&queueSize, "queue", 0, "Dispatcher queue size")
	fs.DurationVar(&resyncInterval, "resync-interval", 0, "Background resync period (e.g., 10m)")
	fs.StringVar(&offerKeyID, "offer-key-id", "", "Sandbox offer key identifier")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			APIKey:    apiKey,
			Secret:    secret,
			SuiteName: suiteName,
			LogPath:   logPath,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:        sandboxAddress.String(),
			OfferKeyIdentifier: offerKeyID,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			DispatchWorkers: workers,
			QueueSize:       queueSize,
			ResyncInterval:  resyncInterval,
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(strings.Trim(host, "[]")); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
