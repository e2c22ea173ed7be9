// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the swarmdeck TUI.
//
// One Bubble Tea model owns the whole screen: the user sidebar, the
// transcript viewport, the input line, and the status bar. All state
// mutations flow through the session registry; network calls run in
// tea.Cmd goroutines and come back as completion messages.
package chat
