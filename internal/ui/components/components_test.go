// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/swarmdeck-tui/internal/gateway"
	"github.com/jeranaias/swarmdeck-tui/internal/model"
	"github.com/jeranaias/swarmdeck-tui/internal/transcript"
	"github.com/jeranaias/swarmdeck-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBarHealthSegments(t *testing.T) {
	theme := styles.NewTheme()

	tests := []struct {
		health gateway.HealthStatus
		want   string
	}{
		{gateway.HealthOnline, "online"},
		{gateway.HealthOffline, "offline"},
		{gateway.HealthUnknown, "verificando"},
	}

	for _, tt := range tests {
		bar := NewStatusBar(theme)
		bar.Health = tt.health
		bar.Width = 120

		if got := bar.Render(); !strings.Contains(got, tt.want) {
			t.Errorf("Render() with health %v does not contain %q", tt.health, tt.want)
		}
	}
}

func TestStatusBarShowsActiveUser(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme())
	bar.ActiveUser = "João Silva"
	bar.Width = 120

	if got := bar.Render(); !strings.Contains(got, "João Silva") {
		t.Error("status bar does not show the active user")
	}
}

// =============================================================================
// SIDEBAR TESTS
// =============================================================================

func TestSidebarRendersRoster(t *testing.T) {
	sb := NewSidebar(styles.NewTheme())
	sb.Users = model.DefaultUsers()
	sb.ActiveID = "client789"
	sb.Width = 28

	out := sb.Render()
	if !strings.Contains(out, "João Silva") {
		t.Error("sidebar missing first user")
	}
	if !strings.Contains(out, "client789") {
		t.Error("sidebar missing user id")
	}
}

// =============================================================================
// MESSAGE RENDERER TESTS
// =============================================================================

func TestRenderAssistantMessage(t *testing.T) {
	r := NewMessageRenderer(styles.NewTheme())
	view := transcript.Project(model.NewAssistantMessage(
		"Seu pedido está a caminho.",
		[]string{"support"},
		[]string{"faq.md"},
		nil,
	))

	out := r.Render(view)
	if !strings.Contains(out, "Seu pedido está a caminho.") {
		t.Error("body missing")
	}
	if !strings.Contains(out, "Support") {
		t.Error("agent badge missing")
	}
	if !strings.Contains(out, "1 fonte(s)") {
		t.Error("source tag missing")
	}
}

func TestRenderDebugPanelToggle(t *testing.T) {
	r := NewMessageRenderer(styles.NewTheme())
	view := transcript.Project(model.NewAssistantMessage(
		"olá",
		[]string{"support"},
		nil,
		&model.DebugTrace{RoutingDecision: "support", TotalTimeMs: 300},
	))

	if out := r.Render(view); strings.Contains(out, "Debug Info") {
		t.Error("debug panel shown while toggled off")
	}

	r.ShowDebug = true
	out := r.Render(view)
	if !strings.Contains(out, "Debug Info") || !strings.Contains(out, "300ms") {
		t.Error("debug panel missing while toggled on")
	}
}

func TestRenderExpandedSources(t *testing.T) {
	r := NewMessageRenderer(styles.NewTheme())
	r.OpenSources = true
	view := transcript.Project(model.NewAssistantMessage(
		"olá",
		[]string{"knowledge"},
		[]string{"https://example.test/faq"},
		nil,
	))

	if out := r.Render(view); !strings.Contains(out, "https://example.test/faq") {
		t.Error("expanded source list missing")
	}
}

// =============================================================================
// TOAST TESTS
// =============================================================================

func TestToastExpiry(t *testing.T) {
	m := NewToastManager()
	m.AddWarning("falha ao salvar estado")

	if !m.HasToasts() {
		t.Fatal("toast not added")
	}

	toasts := m.Tick()
	if len(toasts) != 1 {
		t.Fatalf("got %d toasts, want 1", len(toasts))
	}

	// Force expiry and tick again.
	m.toasts[0].CreatedAt = time.Now().Add(-time.Minute)
	if remaining := m.Tick(); len(remaining) != 0 {
		t.Errorf("expired toast survived: %v", remaining)
	}
}

func TestToastNewestFirst(t *testing.T) {
	m := NewToastManager()
	m.AddError("primeiro")
	m.AddError("segundo")

	toasts := m.Tick()
	if toasts[0].Message != "segundo" {
		t.Errorf("newest toast = %q, want 'segundo'", toasts[0].Message)
	}
}
