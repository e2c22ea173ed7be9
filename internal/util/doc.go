// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for swarmdeck: atomic file
// writes for the persistent store and width-aware string shaping for the
// terminal UI.
package util
