// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file implements the tea.Cmd constructors for the chat view. Each
// network call runs in its own goroutine and reports back as a message;
// nothing here touches model state.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swarmdeck-tui/internal/gateway"
	"github.com/jeranaias/swarmdeck-tui/internal/session"
)

// checkHealthCmd probes the backend once.
func checkHealthCmd(client *gateway.Client) tea.Cmd {
	return func() tea.Msg {
		return HealthStatusMsg{Status: client.CheckHealth(context.Background())}
	}
}

// healthTickCmd schedules the next periodic probe. The timer re-arms on
// every tick regardless of whether the previous probe completed; stale
// results overwrite newer ones harmlessly (last-write-wins).
func healthTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return HealthTickMsg{}
	})
}

// sendMessageCmd runs one chat round trip for the given user. The
// completion message records the user id so the reply lands in the
// right log even after a session switch.
func sendMessageCmd(client *gateway.Client, text, userID string) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.SendMessage(context.Background(), text, userID)
		return SendCompleteMsg{UserID: userID, Reply: reply, Err: err}
	}
}

// createUserCmd runs one create-user round trip through the registry.
func createUserCmd(registry *session.Registry, client *gateway.Client, name string) tea.Cmd {
	return func() tea.Msg {
		user, err := registry.CreateUser(context.Background(), client, name, "")
		return UserCreatedMsg{User: user, Err: err}
	}
}

// toastTickCmd drives toast expiry at a coarse rate.
func toastTickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return ToastTickMsg{}
	})
}
