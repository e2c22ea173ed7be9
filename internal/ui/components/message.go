// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/jeranaias/swarmdeck-tui/internal/model"
	"github.com/jeranaias/swarmdeck-tui/internal/transcript"
	"github.com/jeranaias/swarmdeck-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE RENDERER
// =============================================================================

// MessageRenderer turns projected message views into styled terminal
// output.
type MessageRenderer struct {
	Width       int
	ShowDebug   bool
	OpenSources bool

	theme *styles.Theme
}

// NewMessageRenderer creates a renderer with the given theme.
func NewMessageRenderer(theme *styles.Theme) MessageRenderer {
	return MessageRenderer{Width: 80, theme: theme}
}

// Render renders one transcript entry.
func (r MessageRenderer) Render(view transcript.MessageView) string {
	body := r.renderBody(view)

	bubbleWidth := r.Width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var bubble string
	switch {
	case view.Role == model.RoleUser:
		bubble = r.theme.UserBubble.MaxWidth(bubbleWidth).Render(body)
	case view.IsError:
		bubble = r.theme.ErrorBubble.MaxWidth(bubbleWidth).Render(body)
	default:
		bubble = r.theme.AssistantBubble.MaxWidth(bubbleWidth).Render(body)
	}

	parts := []string{bubble}
	if meta := r.renderMeta(view); meta != "" {
		parts = append(parts, meta)
	}
	if r.OpenSources && view.Sources != nil {
		parts = append(parts, r.renderSourceList(view.Sources))
	}
	if r.ShowDebug && view.Debug != nil {
		parts = append(parts, r.renderDebug(view.Debug))
	}
	if !view.Timestamp.IsZero() {
		parts = append(parts, r.theme.Timestamp.Render(view.Timestamp.Format("15:04")))
	}

	return strings.Join(parts, "\n")
}

func (r MessageRenderer) renderBody(view transcript.MessageView) string {
	var paras []string
	for _, para := range view.Paragraphs {
		var lines []string
		for _, line := range para {
			lines = append(lines, r.renderLine(line))
		}
		paras = append(paras, strings.Join(lines, "\n"))
	}
	return strings.Join(paras, "\n\n")
}

func (r MessageRenderer) renderLine(line transcript.Line) string {
	var b strings.Builder
	for _, span := range line {
		switch span.Kind {
		case transcript.SpanBold:
			b.WriteString(r.theme.Bold.Render(span.Text))
		case transcript.SpanItalic:
			b.WriteString(r.theme.Italic.Render(span.Text))
		case transcript.SpanCode:
			b.WriteString(r.theme.InlineCode.Render(span.Text))
		case transcript.SpanLink:
			b.WriteString(r.theme.Link.Render(span.Text) + r.theme.MessageMeta.Render(" ("+span.URL+")"))
		default:
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

// renderMeta renders the badge/source tag row under assistant messages.
func (r MessageRenderer) renderMeta(view transcript.MessageView) string {
	var tags []string
	for _, badge := range view.Badges {
		style := r.theme.BadgeStyle(badge.StyleClass)
		tags = append(tags, style.Render(badge.Icon+" "+badge.Label))
	}
	if view.Sources != nil {
		tags = append(tags, r.theme.SourceTag.Render(view.Sources.Label))
	}
	if len(tags) == 0 {
		return ""
	}
	return strings.Join(tags, "  ")
}

func (r MessageRenderer) renderSourceList(summary *transcript.SourceSummary) string {
	var b strings.Builder
	for i, src := range summary.Sources {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.theme.SourceList.Render("• " + src))
	}
	return b.String()
}

func (r MessageRenderer) renderDebug(panel *transcript.DebugPanel) string {
	var b strings.Builder
	b.WriteString(r.theme.DebugTitle.Render("🛠️ Debug Info"))
	b.WriteString("\n")

	field := func(name, value string) {
		b.WriteString(r.theme.DebugField.Render(name + ": "))
		b.WriteString(r.theme.DebugValue.Render(value))
		b.WriteString("\n")
	}
	field("routing", panel.RoutingDecision)
	field("language", panel.DetectedLanguage)
	field("guardrail", panel.GuardrailStatus)
	field("total_time", fmt.Sprintf("%dms", panel.TotalTimeMs))

	for _, log := range panel.Logs {
		b.WriteString(r.theme.DebugValue.Render(fmt.Sprintf("  +%dms %s", log.TimestampOffsetMs, log.Tool)))
		b.WriteString("\n")
	}

	return r.theme.DebugPanel.Render(strings.TrimRight(b.String(), "\n"))
}
