// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// DEBUG TRACE (server-supplied, read-only)
// =============================================================================

// Guardrail status values reported by the backend. The set is open;
// clients must pass unknown values through unchanged.
const (
	GuardrailPassed  = "Passed"
	GuardrailBlocked = "Blocked"
)

// DebugTrace is the backend's diagnostic record for one reply: the
// routing decision, detected language, guardrail outcome, total
// processing time, and the ordered tool invocations. It is purely
// observational and never modified by the client.
type DebugTrace struct {
	RoutingDecision  string           `json:"routing"`
	DetectedLanguage string           `json:"language"`
	GuardrailStatus  string           `json:"guardrail"`
	TotalTimeMs      int64            `json:"total_time_ms"`
	Logs             []ToolInvocation `json:"logs,omitempty"`
}

// ToolInvocation is one entry in a DebugTrace log: a tool the backend
// called while producing the reply, with its offset from request start.
type ToolInvocation struct {
	Type              string `json:"type"` // "tool_usage"
	Tool              string `json:"tool"`
	TimestampOffsetMs int64  `json:"timestamp_ms"`
	Input             string `json:"input,omitempty"`
	Output            string `json:"output,omitempty"`
}
