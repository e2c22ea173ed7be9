// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the persistent store for swarmdeck.
//
// The Store interface is a synchronous string key/value contract over a
// small fixed set of logical keys. Three backends exist: FileStore
// (one atomically-written JSON file per key), SQLiteStore
// (modernc.org/sqlite key/value table), and MemStore (ephemeral).
//
// StateStore layers the application schema on top: the user roster, the
// conversations map, and the active user id. Every mutation re-serializes
// the entire relevant collection, so persisted state is always internally
// consistent; an interrupted write loses at most that one write. The
// in-memory copy is authoritative during a session; the store is the
// durability mechanism only, and a failed write degrades to a warning,
// never an error that stops the client.
package storage
