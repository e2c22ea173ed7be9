// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// AgentError is the agent identifier attached to synthesized error
// messages when a send fails.
const AgentError = "error"

// Message is a single transcript entry. The role tags which fields are
// meaningful: user messages carry only content and timestamp; assistant
// messages additionally carry agents, sources, and an optional debug
// trace.
//
// LegacyAgent holds the single "agent" field written by older versions.
// It is kept through round trips so stored records are never rewritten;
// use Normalized or AgentList to read the current shape.
type Message struct {
	ID        string    `json:"id,omitempty"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// Assistant fields
	Agents      []string    `json:"agents,omitempty"`
	LegacyAgent string      `json:"agent,omitempty"`
	Sources     []string    `json:"sources,omitempty"`
	DebugInfo   *DebugTrace `json:"debug_info,omitempty"`
}

// NewUserMessage creates a user message stamped with the current time.
func NewUserMessage(content string) Message {
	return Message{
		ID:        generateMessageID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// NewAssistantMessage creates an assistant message from a backend reply.
func NewAssistantMessage(content string, agents, sources []string, debug *DebugTrace) Message {
	if agents == nil {
		agents = []string{}
	}
	if sources == nil {
		sources = []string{}
	}
	return Message{
		ID:        generateMessageID(),
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Agents:    agents,
		Sources:   sources,
		DebugInfo: debug,
	}
}

// NewErrorMessage synthesizes the assistant message recorded in the
// transcript when a send fails. The failure stays visible; it is never
// silently dropped.
func NewErrorMessage(detail string) Message {
	return NewAssistantMessage(
		"Erro ao conectar com a API: "+detail,
		[]string{AgentError},
		nil,
		nil,
	)
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// AgentList returns the normalized agent identifiers for the message:
// the agents list when present, otherwise the legacy single agent
// wrapped in a list, otherwise an empty list. Never nil.
func (m Message) AgentList() []string {
	if len(m.Agents) > 0 {
		return m.Agents
	}
	if m.LegacyAgent != "" {
		return []string{m.LegacyAgent}
	}
	return []string{}
}

// Normalized returns a copy of the message with Agents populated via
// AgentList. The receiver is unchanged, so a legacy record loaded from
// the store keeps its original shape when written back.
func (m Message) Normalized() Message {
	out := m
	out.Agents = m.AgentList()
	return out
}

// IsError reports whether the message is a synthesized send-failure entry.
func (m Message) IsError() bool {
	agents := m.AgentList()
	return m.Role == RoleAssistant && len(agents) > 0 && agents[0] == AgentError
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateMessageID creates a client-side unique message ID.
func generateMessageID() string {
	return "msg_" + uuid.NewString()
}
