// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the swarmdeck
// TUI: status bar, user sidebar, message rendering, toasts, and the
// typing indicator.
package components
