// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swarmdeck-tui/internal/config"
	"github.com/jeranaias/swarmdeck-tui/internal/gateway"
	"github.com/jeranaias/swarmdeck-tui/internal/session"
	"github.com/jeranaias/swarmdeck-tui/internal/transcript"
	"github.com/jeranaias/swarmdeck-tui/internal/ui/components"
	"github.com/jeranaias/swarmdeck-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the whole swarmdeck screen.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int
	ready  bool

	// Collaborators
	registry *session.Registry
	client   *gateway.Client

	// Configuration
	healthInterval time.Duration
	storeBackend   string

	// Request state. busy covers the whole client, not one user: at
	// most one chat request is in flight at any time.
	busy   bool
	health gateway.HealthStatus

	// UI Components
	viewport viewport.Model
	input    textinput.Model
	typing   components.TypingIndicator
	toasts   *components.ToastManager

	// Rendering toggles
	showDebug   bool
	openSources bool

	// Header badge for the agent that answered last. Empty after every
	// session selection until the next reply arrives.
	headerBadge *transcript.AgentBadge

	// New-user prompt overlay
	prompting   bool
	creating    bool
	promptInput textinput.Model

	// Key bindings
	keyMap KeyMap
}

// New creates the chat model. The registry must already be loaded.
func New(registry *session.Registry, client *gateway.Client, cfg *config.Config) *Model {
	theme := styles.NewTheme()

	input := textinput.New()
	input.Placeholder = "Digite sua mensagem..."
	input.CharLimit = 2000
	input.Focus()

	promptInput := textinput.New()
	promptInput.Placeholder = "Nome do novo usuário"
	promptInput.CharLimit = 120

	m := &Model{
		theme:          theme,
		registry:       registry,
		client:         client,
		healthInterval: cfg.API.HealthInterval(),
		storeBackend:   cfg.Storage.Backend,
		health:         gateway.HealthUnknown,
		input:          input,
		promptInput:    promptInput,
		typing:         components.NewTypingIndicator(theme),
		toasts:         components.NewToastManager(),
		showDebug:      cfg.UI.ShowDebug,
		keyMap:         DefaultKeyMap(),
	}

	// Store write failures degrade durability, never the session; they
	// surface as warning toasts.
	registry.OnWarning(func(err error) {
		m.toasts.AddWarning("falha ao persistir estado: " + err.Error())
	})

	return m
}

// Init runs the first health probe and starts the probe timer.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		checkHealthCmd(m.client),
		healthTickCmd(m.healthInterval),
		textinput.Blink,
	)
}

// Busy reports whether a chat request is in flight.
func (m *Model) Busy() bool {
	return m.busy
}

// Health returns the last observed backend status.
func (m *Model) Health() gateway.HealthStatus {
	return m.health
}
