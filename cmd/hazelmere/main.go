// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

// Package main is the entry point for the hazelmere command.
//
// The command has three modes:
//
//	hazelmere decode [-user ID] FILE     decode a binary snapshot payload and
//	                                     print a summary
//	hazelmere chart -user ID [flags]     fetch progression data and emit chart
//	                                     series as JSON on stdout
//	hazelmere watch                      run the supervised watch agent
//	                                     (stream watchers + ops endpoints)
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority
// wins):
//   - Environment variables (HAZELMERE_API_URL, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the run context: watch mode shuts the supervisor
// tree down gracefully, chart mode abandons in-flight requests.
//
// # Example Usage
//
// Chart the last 90 days of Overall experience:
//
//	export HAZELMERE_API_URL=http://localhost:8080
//	hazelmere chart -user bruno
//
// Watch two users with the ops endpoint on the default port:
//
//	export AGENT_STREAM_USER_IDS=bruno,gnomechild
//	hazelmere watch
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ctfloyd/hazelmere-charts/internal/config"
	"github.com/ctfloyd/hazelmere-charts/internal/logging"
	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	mode := os.Args[1]
	args := os.Args[2:]

	if mode == "version" {
		fmt.Println(version)
		return
	}

	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.SetAppInfo(version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	switch mode {
	case "decode":
		err = runDecode(args)
	case "chart":
		err = runChart(ctx, cfg, args)
	case "watch":
		err = runWatch(ctx, cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", mode)
		usage()
		os.Exit(2)
	}
	if err != nil {
		logging.Fatal().Err(err).Str("command", mode).Msg("Command failed")
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: hazelmere <command> [flags]

Commands:
  decode     decode a binary snapshot payload and print a summary
  chart      fetch progression data and emit chart series as JSON
  watch      run the supervised watch agent
  version    print the build version

Run "hazelmere <command> -h" for command flags.
`)
}
