// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swarmdeck-tui/internal/gateway"
	"github.com/jeranaias/swarmdeck-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom status bar: backend health, active session,
// storage backend, and keyboard shortcuts.
type StatusBar struct {
	Health        gateway.HealthStatus
	ActiveUser    string
	StoreBackend  string
	Busy          bool
	Width         int
	ShowShortcuts bool

	theme *styles.Theme
}

// NewStatusBar creates a status bar with the given theme.
func NewStatusBar(theme *styles.Theme) StatusBar {
	return StatusBar{
		Health:        gateway.HealthUnknown,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// healthSegment renders the backend indicator with shape + color, so the
// state reads without color too.
func (s StatusBar) healthSegment() string {
	switch s.Health {
	case gateway.HealthOnline:
		return s.theme.HealthOnline.Render("● online")
	case gateway.HealthOffline:
		return s.theme.HealthOffline.Render("✗ offline")
	default:
		return s.theme.HealthUnknown.Render("○ verificando...")
	}
}

// Render renders the status bar at the configured width.
func (s StatusBar) Render() string {
	var left []string

	left = append(left, s.healthSegment())
	if s.ActiveUser != "" {
		left = append(left, s.theme.ShortcutDesc.Render("sessão: ")+s.theme.ShortcutKey.Render(s.ActiveUser))
	}
	if s.StoreBackend != "" {
		left = append(left, s.theme.ShortcutDesc.Render(s.StoreBackend))
	}
	if s.Busy {
		left = append(left, s.theme.ShortcutDesc.Render("enviando..."))
	}

	leftPart := strings.Join(left, s.theme.ShortcutDesc.Render(" │ "))

	var rightPart string
	if s.ShowShortcuts {
		shortcuts := []struct{ key, desc string }{
			{"tab", "trocar usuário"},
			{"ctrl+n", "novo usuário"},
			{"ctrl+d", "debug"},
			{"ctrl+l", "limpar"},
			{"ctrl+c", "sair"},
		}
		var parts []string
		for _, sc := range shortcuts {
			parts = append(parts, s.theme.ShortcutKey.Render(sc.key)+s.theme.ShortcutDesc.Render(" "+sc.desc))
		}
		rightPart = strings.Join(parts, "  ")
	}

	bar := leftPart
	if rightPart != "" {
		gap := s.Width - lipgloss.Width(leftPart) - lipgloss.Width(rightPart) - 2
		if gap > 0 {
			bar = leftPart + strings.Repeat(" ", gap) + rightPart
		} else {
			// Narrow terminal: drop the shortcuts, health wins.
			bar = leftPart
		}
	}

	return s.theme.StatusBar.Width(s.Width).Render(bar)
}
