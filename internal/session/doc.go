// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the in-memory client state: the simulated user
// roster, the active user selection, and the per-user conversation logs.
// Every mutation is written back to the persistent store before it
// returns; store write failures are reported through a warning hook and
// never abort the mutation.
package session
