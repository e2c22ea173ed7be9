// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for swarmdeck.
//
// Configuration comes from ~/.swarmdeck/config.toml when present,
// with built-in defaults and SWARMDECK_* environment overrides on top.
package config
