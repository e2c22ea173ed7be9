// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import (
	"fmt"
	"time"

	"github.com/jeranaias/swarmdeck-tui/internal/model"
)

// =============================================================================
// VIEW MODELS
// =============================================================================

// SourceSummary is the collapsed citation tag under a message.
type SourceSummary struct {
	Count   int
	Label   string   // e.g. "📎 2 fonte(s)"
	Sources []string // full list, shown when expanded
}

// DebugPanel mirrors the backend's debug trace for the toggleable
// per-message panel. Fields are copied verbatim, never derived.
type DebugPanel struct {
	RoutingDecision  string
	DetectedLanguage string
	GuardrailStatus  string
	TotalTimeMs      int64
	Logs             []model.ToolInvocation
}

// MessageView is one transcript entry, ready to style and print.
type MessageView struct {
	Role       model.Role
	IsError    bool
	Timestamp  time.Time
	Paragraphs []Paragraph
	Badges     []AgentBadge
	// HeaderBadge is the badge shown in the session header after this
	// reply: the first agent of the reply is authoritative when a turn
	// lists several.
	HeaderBadge *AgentBadge
	Sources     *SourceSummary
	Debug       *DebugPanel
}

// =============================================================================
// PROJECTION
// =============================================================================

// Project turns one message into its view model. The message is
// normalized first, so legacy single-agent records project the same as
// current ones.
func Project(msg model.Message) MessageView {
	msg = msg.Normalized()

	view := MessageView{
		Role:       msg.Role,
		IsError:    msg.IsError(),
		Timestamp:  msg.Timestamp,
		Paragraphs: Parse(msg.Content),
	}

	if msg.Role != model.RoleAssistant {
		return view
	}

	view.Badges = BadgesFor(msg.Agents)
	if len(msg.Agents) > 0 {
		badge := BadgeFor(msg.Agents[0])
		view.HeaderBadge = &badge
	}
	view.Sources = SummarizeSources(msg.Sources)
	view.Debug = projectDebug(msg.DebugInfo)

	return view
}

// ProjectAll projects a conversation in order.
func ProjectAll(msgs []model.Message) []MessageView {
	views := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, Project(m))
	}
	return views
}

// SummarizeSources builds the citation tag, or nil when there is
// nothing to cite.
func SummarizeSources(sources []string) *SourceSummary {
	if len(sources) == 0 {
		return nil
	}
	return &SourceSummary{
		Count:   len(sources),
		Label:   fmt.Sprintf("📎 %d fonte(s)", len(sources)),
		Sources: sources,
	}
}

func projectDebug(trace *model.DebugTrace) *DebugPanel {
	if trace == nil {
		return nil
	}
	return &DebugPanel{
		RoutingDecision:  trace.RoutingDecision,
		DetectedLanguage: trace.DetectedLanguage,
		GuardrailStatus:  trace.GuardrailStatus,
		TotalTimeMs:      trace.TotalTimeMs,
		Logs:             trace.Logs,
	}
}
