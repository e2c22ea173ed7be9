// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines all Bubble Tea message types used by the chat view.
// All message types follow Bubble Tea conventions and are immutable.
package chat

import (
	"github.com/jeranaias/swarmdeck-tui/internal/gateway"
	"github.com/jeranaias/swarmdeck-tui/internal/model"
)

// =============================================================================
// HEALTH MESSAGES
// =============================================================================

// HealthTickMsg fires on the periodic health probe timer.
type HealthTickMsg struct{}

// HealthStatusMsg reports the result of one health probe. Results apply
// last-write-wins; stale completions simply overwrite the indicator.
type HealthStatusMsg struct {
	Status gateway.HealthStatus
}

// =============================================================================
// CHAT MESSAGES
// =============================================================================

// SendCompleteMsg signals that a send-message round trip finished.
// UserID is the session the request was sent for; the reply is appended
// to that user's log even if another user is active by now.
type SendCompleteMsg struct {
	UserID string
	Reply  *gateway.AssistantReply
	Err    error
}

// =============================================================================
// USER MESSAGES
// =============================================================================

// UserCreatedMsg signals that a create-user round trip finished.
type UserCreatedMsg struct {
	User model.User
	Err  error
}

// =============================================================================
// UI MESSAGES
// =============================================================================

// ToastTickMsg drives toast expiry while any toast is visible.
type ToastTickMsg struct{}
