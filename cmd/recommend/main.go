// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

// Command recommend is the interactive console recommender.
//
// It loads the dataset like the server does, then asks for a user id, the
// category of the page the user is on and a city, and prints the
// recommended category and place:
//
//	$ recommend
//	Add User ID (1 to 300): 1
//	Add Category (Culture, Nautical, ...): Culture
//	Add City (Jakarta, Yogyakarta, ...): Jakarta
//	Nautical:  Pantai Ancol
//
// Configuration comes from the same koanf layers as the server; -config
// names a YAML file explicitly.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/waypoint/internal/config"
	"github.com/tomtom215/waypoint/internal/dataset"
	"github.com/tomtom215/waypoint/internal/logging"
	"github.com/tomtom215/waypoint/internal/recommend"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "seed for this draw (0 uses recommend.seed)")
	flag.Parse()

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.LoadWithKoanf()
	}
	if err != nil {
		return err
	}

	// Keep the console clean; only problems are logged.
	logging.Init(logging.Config{Level: "warn", Format: "console", Output: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader, err := dataset.New(&cfg.Dataset)
	if err != nil {
		return err
	}
	defer func() {
		if err := loader.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing dataset loader")
		}
	}()

	table, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	engineCfg := recommend.DefaultConfig()
	engineCfg.Seed = cfg.Recommend.Seed
	engineCfg.BudgetMultiplier = cfg.Recommend.BudgetMultiplier
	engine, err := recommend.NewEngine(table, engineCfg, logging.Logger())
	if err != nil {
		return err
	}

	return newSession(os.Stdin, os.Stdout).run(ctx, engine, seed)
}
