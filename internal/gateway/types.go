// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import (
	"encoding/json"

	"github.com/jeranaias/swarmdeck-tui/internal/model"
)

// =============================================================================
// HEALTH
// =============================================================================

// HealthStatus is the backend reachability status as seen by the client.
type HealthStatus int

const (
	HealthUnknown HealthStatus = iota
	HealthOnline
	HealthOffline
)

// String returns a short label for status bars and logs.
func (s HealthStatus) String() string {
	switch s {
	case HealthOnline:
		return "online"
	case HealthOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// healthResponse is the body of GET /health. Only a literal "healthy"
// status counts as online.
type healthResponse struct {
	Status string `json:"status"`
}

// agentField decodes the backend's agent_used field, which is either a
// single string or a list of strings depending on how many agents handled
// the turn.
type agentField []string

func (a *agentField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*a = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*a = nil
		return nil
	}
	*a = []string{single}
	return nil
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type chatResponse struct {
	Response  string            `json:"response"`
	AgentUsed agentField        `json:"agent_used"`
	Sources   []string          `json:"sources,omitempty"`
	DebugInfo *model.DebugTrace `json:"debug_info,omitempty"`
}

type createUserRequest struct {
	Name   string `json:"name"`
	UserID string `json:"user_id,omitempty"`
}

type createUserResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// errorBody is the FastAPI-style error envelope returned on 4xx/5xx.
type errorBody struct {
	Detail string `json:"detail"`
}

// =============================================================================
// RESULT TYPES
// =============================================================================

// AssistantReply is one completed backend turn, normalized for the
// conversation log.
type AssistantReply struct {
	Content   string
	Agents    []string
	Sources   []string
	DebugInfo *model.DebugTrace
}

// CreatedUser is the backend's acknowledgement of a new simulated user.
type CreatedUser struct {
	ID   string
	Name string
}
