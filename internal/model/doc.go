// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for archetype users, chat
// messages, and the backend-supplied debug traces.
//
// Messages are a union tagged by role. Assistant messages written by
// older versions carried a single "agent" field instead of the current
// "agents" list; readers normalize that shape on access and never
// rewrite stored records (see Message.Normalized).
package model
