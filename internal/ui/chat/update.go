// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swarmdeck-tui/internal/gateway"
	"github.com/jeranaias/swarmdeck-tui/internal/model"
	"github.com/jeranaias/swarmdeck-tui/internal/session"
	"github.com/jeranaias/swarmdeck-tui/internal/transcript"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update handles all incoming Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)

	case HealthTickMsg:
		return m, tea.Batch(
			checkHealthCmd(m.client),
			healthTickCmd(m.healthInterval),
		)

	case HealthStatusMsg:
		// Last write wins; a stale probe result is harmless.
		m.health = msg.Status
		return m, nil

	case SendCompleteMsg:
		return m.completeSend(msg)

	case UserCreatedMsg:
		return m.completeCreateUser(msg)

	case ToastTickMsg:
		m.toasts.Tick()
		if m.toasts.HasToasts() {
			return m, toastTickCmd()
		}
		return m, nil

	case spinner.TickMsg:
		return m, m.typing.Update(msg)
	}

	return m.updateComponents(msg)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()

	case key.Matches(msg, m.keyMap.NextUser):
		m.cycleUser(1)
		return m, toastTickCmd()

	case key.Matches(msg, m.keyMap.PrevUser):
		m.cycleUser(-1)
		return m, toastTickCmd()

	case key.Matches(msg, m.keyMap.NewUser):
		m.prompting = true
		m.promptInput.SetValue("")
		m.promptInput.Focus()
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleDebug):
		m.showDebug = !m.showDebug
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleSources):
		m.openSources = !m.openSources
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.Clear):
		m.registry.Clear(m.registry.ActiveUserID())
		m.headerBadge = nil
		m.refreshViewport()
		return m, toastTickCmd()

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil
	}

	return m.updateComponents(msg)
}

// updatePrompt handles keys while the new-user prompt is open.
func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Cancel):
		m.closePrompt()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		if m.creating {
			// A round trip is already in flight for this prompt.
			return m, nil
		}
		name := strings.TrimSpace(m.promptInput.Value())
		if name == "" {
			// Operator must correct the input; no mutation, no request.
			m.toasts.AddWarning("o nome não pode ser vazio")
			return m, toastTickCmd()
		}
		m.creating = true
		return m, createUserCmd(m.registry, m.client, name)
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

// =============================================================================
// SEND WORKFLOW
// =============================================================================

// submit starts one send-message round trip for the active user.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		// One request in flight at a time; new attempts are rejected,
		// never queued.
		m.toasts.AddWarning("aguarde a resposta anterior")
		return m, toastTickCmd()
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	userID := m.registry.ActiveUserID()
	if userID == "" {
		return m, nil
	}

	// Optimistic append: the outgoing message is visible and persisted
	// before the backend answers.
	m.registry.Append(userID, model.NewUserMessage(text))
	m.input.SetValue("")
	m.busy = true
	m.refreshViewport()

	// The optimistic append may have raised a persistence warning, so a
	// toast tick rides along with the send.
	return m, tea.Batch(
		m.typing.Start(),
		sendMessageCmd(m.client, text, userID),
		toastTickCmd(),
	)
}

// completeSend finishes a round trip. The busy flag drops on every
// path, success or failure.
func (m *Model) completeSend(msg SendCompleteMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.typing.Stop()

	if msg.Err != nil {
		m.registry.Append(msg.UserID, model.NewErrorMessage(errorDetail(msg.Err)))
	} else {
		reply := model.NewAssistantMessage(
			msg.Reply.Content,
			msg.Reply.Agents,
			msg.Reply.Sources,
			msg.Reply.DebugInfo,
		)
		m.registry.Append(msg.UserID, reply)
		if msg.UserID == m.registry.ActiveUserID() {
			m.headerBadge = transcript.Project(reply).HeaderBadge
		}
	}

	if msg.UserID == m.registry.ActiveUserID() {
		m.refreshViewport()
		m.viewport.GotoBottom()
	}
	return m, toastTickCmd()
}

// errorDetail extracts the human-readable failure reason for the
// transcript entry.
func errorDetail(err error) string {
	var be *gateway.BackendError
	if errors.As(err, &be) {
		return be.Error()
	}
	return err.Error()
}

// =============================================================================
// USER MANAGEMENT
// =============================================================================

func (m *Model) completeCreateUser(msg UserCreatedMsg) (tea.Model, tea.Cmd) {
	m.creating = false

	if msg.Err != nil {
		// Server detail (duplicate id, validation) is surfaced verbatim.
		m.toasts.AddError(msg.Err.Error())
		return m, toastTickCmd()
	}

	m.closePrompt()
	if _, err := m.registry.SelectUser(msg.User.ID); err != nil && !errors.Is(err, session.ErrUserNotFound) {
		m.toasts.AddError(err.Error())
	}
	m.headerBadge = nil
	m.refreshViewport()
	return m, toastTickCmd()
}

// cycleUser moves the active session forward or backward through the
// roster.
func (m *Model) cycleUser(step int) {
	users := m.registry.Users()
	if len(users) == 0 {
		return
	}

	active := m.registry.ActiveUserID()
	idx := 0
	for i, u := range users {
		if u.ID == active {
			idx = i
			break
		}
	}
	next := (idx + step + len(users)) % len(users)

	if _, err := m.registry.SelectUser(users[next].ID); err != nil {
		return
	}
	// Every selection starts with an empty badge until the next reply.
	m.headerBadge = nil
	m.refreshViewport()
	m.viewport.GotoBottom()
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.promptInput.Blur()
	m.input.Focus()
}

// =============================================================================
// COMPONENT PLUMBING
// =============================================================================

func (m *Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	vpWidth := width - sidebarWidth - 2
	vpHeight := height - headerHeight - inputHeight - statusHeight
	if vpWidth < 20 {
		vpWidth = 20
	}
	if vpHeight < 5 {
		vpHeight = 5
	}

	if !m.ready {
		m.viewport = newViewport(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
	m.input.Width = width - 6

	m.refreshViewport()
	m.viewport.GotoBottom()
}
