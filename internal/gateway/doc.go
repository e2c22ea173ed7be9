// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gateway provides the HTTP client for the agent swarm backend.
//
// The client is stateless and safe for concurrent use; the send-message
// workflow in the UI guarantees at most one in-flight request per
// session, but nothing here depends on that.
package gateway
