// swarmdeck - a terminal client for operating simulated user sessions
// against a multi-agent chat backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swarmdeck-tui/internal/config"
	"github.com/jeranaias/swarmdeck-tui/internal/gateway"
	"github.com/jeranaias/swarmdeck-tui/internal/session"
	"github.com/jeranaias/swarmdeck-tui/internal/storage"
	"github.com/jeranaias/swarmdeck-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("swarmdeck %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	apiURL := flag.String("api", "", "backend base URL (overrides config)")
	backend := flag.String("storage", "", "storage backend: file, sqlite, or memory (overrides config)")
	configPath := flag.String("config", "", "path to config file")
	debug := flag.Bool("debug", false, "open per-message debug panels by default")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swarmdeck: %v\n", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
	}
	if *backend != "" {
		cfg.Storage.Backend = *backend
	}
	if *debug {
		cfg.UI.ShowDebug = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "swarmdeck: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swarmdeck: %v\n", err)
		os.Exit(1)
	}
	if closeStore != nil {
		defer closeStore()
	}

	registry := session.NewRegistry(storage.NewStateStore(store))
	if err := registry.LoadOrSeed(); err != nil {
		fmt.Fprintf(os.Stderr, "swarmdeck: failed to load session state: %v\n", err)
		os.Exit(1)
	}

	client := gateway.NewClientWithConfig(&gateway.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	})

	model := chat.New(registry, client, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "swarmdeck: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// openStore builds the configured persistence backend. The returned
// close function is nil for backends with nothing to release.
func openStore(cfg *config.Config) (storage.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemStore(), nil, nil

	case "sqlite":
		path := cfg.Storage.SQLitePath
		if path == "" {
			dir, err := config.ConfigDir()
			if err != nil {
				return nil, nil, err
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, err
			}
			path = filepath.Join(dir, "state.db")
		}
		store, err := storage.NewSQLiteStoreWithPath(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, store.Close, nil

	default: // "file"
		if cfg.Storage.Dir != "" {
			store, err := storage.NewFileStoreWithDir(cfg.Storage.Dir)
			return store, nil, err
		}
		store, err := storage.NewFileStore()
		return store, nil, err
	}
}
