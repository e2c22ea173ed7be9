// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import (
	"reflect"
	"testing"
	"time"

	"github.com/jeranaias/swarmdeck-tui/internal/model"
)

// =============================================================================
// MARKUP PARSER TESTS
// =============================================================================

func TestParseSpans(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Line
	}{
		{
			"plain",
			"apenas texto",
			Line{{Kind: SpanText, Text: "apenas texto"}},
		},
		{
			"bold",
			"um **destaque** aqui",
			Line{
				{Kind: SpanText, Text: "um "},
				{Kind: SpanBold, Text: "destaque"},
				{Kind: SpanText, Text: " aqui"},
			},
		},
		{
			"italic",
			"um *leve* toque",
			Line{
				{Kind: SpanText, Text: "um "},
				{Kind: SpanItalic, Text: "leve"},
				{Kind: SpanText, Text: " toque"},
			},
		},
		{
			"inline code",
			"rode `swarmdeck version`",
			Line{
				{Kind: SpanText, Text: "rode "},
				{Kind: SpanCode, Text: "swarmdeck version"},
			},
		},
		{
			"link",
			"veja [a FAQ](https://example.test/faq)",
			Line{
				{Kind: SpanText, Text: "veja "},
				{Kind: SpanLink, Text: "a FAQ", URL: "https://example.test/faq"},
			},
		},
		{
			"unterminated bold stays literal",
			"sem **fechamento",
			Line{{Kind: SpanText, Text: "sem **fechamento"}},
		},
		{
			"unterminated link stays literal",
			"colchete [solto",
			Line{{Kind: SpanText, Text: "colchete [solto"}},
		},
		{
			"bold not confused with italic",
			"**a** e *b*",
			Line{
				{Kind: SpanBold, Text: "a"},
				{Kind: SpanText, Text: " e "},
				{Kind: SpanItalic, Text: "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paras := Parse(tt.in)
			if len(paras) != 1 || len(paras[0]) != 1 {
				t.Fatalf("Parse(%q) = %d paragraphs, want 1 with 1 line", tt.in, len(paras))
			}
			if !reflect.DeepEqual(paras[0][0], tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, paras[0][0], tt.want)
			}
		})
	}
}

func TestParseParagraphs(t *testing.T) {
	paras := Parse("primeiro parágrafo\ncom duas linhas\n\nsegundo parágrafo")

	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}
	if len(paras[0]) != 2 {
		t.Errorf("first paragraph has %d lines, want 2", len(paras[0]))
	}
	if len(paras[1]) != 1 {
		t.Errorf("second paragraph has %d lines, want 1", len(paras[1]))
	}
}

func TestParseEmpty(t *testing.T) {
	if paras := Parse(""); len(paras) != 0 {
		t.Errorf("Parse(\"\") = %v, want no paragraphs", paras)
	}
	if paras := Parse("\n\n\n"); len(paras) != 0 {
		t.Errorf("Parse(blank) = %v, want no paragraphs", paras)
	}
}

// =============================================================================
// BADGE TESTS
// =============================================================================

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		agent string
		want  AgentBadge
	}{
		{"knowledge", AgentBadge{Icon: "🧠", Label: "Knowledge", StyleClass: "knowledge"}},
		{"support", AgentBadge{Icon: "🎧", Label: "Support", StyleClass: "support"}},
		{"knowledge+support", AgentBadge{Icon: "🔄", Label: "Ambos", StyleClass: "both"}},
		{"router", AgentBadge{Icon: "🔀", Label: "Router", StyleClass: "router"}},
		{"error", AgentBadge{Icon: "❌", Label: "Erro", StyleClass: "error"}},
		{"", AgentBadge{Icon: "🔀", Label: "Router", StyleClass: "router"}},
		{"KNOWLEDGE", AgentBadge{Icon: "🧠", Label: "Knowledge", StyleClass: "knowledge"}},
		{"knowledge_v2", AgentBadge{Icon: "🧠", Label: "Knowledge V2", StyleClass: "knowledge"}},
		{"billing_agent", AgentBadge{Icon: "🤖", Label: "Billing Agent", StyleClass: "agent"}},
	}

	for _, tt := range tests {
		t.Run("agent="+tt.agent, func(t *testing.T) {
			if got := BadgeFor(tt.agent); got != tt.want {
				t.Errorf("BadgeFor(%q) = %+v, want %+v", tt.agent, got, tt.want)
			}
		})
	}
}

// =============================================================================
// PROJECTION TESTS
// =============================================================================

func TestProjectUserMessage(t *testing.T) {
	view := Project(model.NewUserMessage("oi"))

	if view.Role != model.RoleUser {
		t.Errorf("Role = %q", view.Role)
	}
	if view.Badges != nil || view.Sources != nil || view.Debug != nil || view.HeaderBadge != nil {
		t.Error("user messages carry no assistant metadata")
	}
}

func TestProjectAssistantMessage(t *testing.T) {
	msg := model.NewAssistantMessage(
		"Seu pedido está **a caminho**.",
		[]string{"support", "knowledge"},
		[]string{"faq.md", "orders.md"},
		&model.DebugTrace{RoutingDecision: "support", TotalTimeMs: 420},
	)
	view := Project(msg)

	if len(view.Badges) != 2 {
		t.Fatalf("got %d badges, want 2", len(view.Badges))
	}
	// First agent wins the header badge even when several answered.
	if view.HeaderBadge == nil || view.HeaderBadge.StyleClass != "support" {
		t.Errorf("HeaderBadge = %+v, want support", view.HeaderBadge)
	}
	if view.Sources == nil || view.Sources.Count != 2 {
		t.Fatalf("Sources = %+v, want count 2", view.Sources)
	}
	if view.Sources.Label != "📎 2 fonte(s)" {
		t.Errorf("Label = %q", view.Sources.Label)
	}
	if view.Debug == nil || view.Debug.RoutingDecision != "support" || view.Debug.TotalTimeMs != 420 {
		t.Errorf("Debug = %+v", view.Debug)
	}
}

func TestProjectLegacyAgent(t *testing.T) {
	legacy := model.Message{
		Role:        model.RoleAssistant,
		Content:     "resposta antiga",
		Timestamp:   time.Date(2024, 11, 3, 10, 0, 0, 0, time.UTC),
		LegacyAgent: "knowledge",
	}
	view := Project(legacy)

	if len(view.Badges) != 1 || view.Badges[0].StyleClass != "knowledge" {
		t.Errorf("Badges = %+v, want one knowledge badge", view.Badges)
	}
	if legacy.Agents != nil {
		t.Error("projection must not mutate its input")
	}
}

func TestProjectErrorMessage(t *testing.T) {
	view := Project(model.NewErrorMessage("connection refused"))

	if !view.IsError {
		t.Error("IsError = false")
	}
	if len(view.Badges) != 1 || view.Badges[0].StyleClass != "error" {
		t.Errorf("Badges = %+v, want one error badge", view.Badges)
	}
}

func TestProjectIsPure(t *testing.T) {
	msg := model.NewAssistantMessage("**oi**", []string{"support"}, []string{"a.md"}, nil)

	first := Project(msg)
	second := Project(msg)
	if !reflect.DeepEqual(first, second) {
		t.Error("projecting the same message twice gave different results")
	}
}

func TestProjectAllKeepsOrder(t *testing.T) {
	msgs := []model.Message{
		model.NewUserMessage("oi"),
		model.NewAssistantMessage("olá", []string{"support"}, nil, nil),
	}
	views := ProjectAll(msgs)

	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].Role != model.RoleUser || views[1].Role != model.RoleAssistant {
		t.Error("views out of order")
	}
}
