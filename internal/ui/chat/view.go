// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swarmdeck-tui/internal/transcript"
	"github.com/jeranaias/swarmdeck-tui/internal/ui/components"
)

// Layout constants, in terminal rows/columns.
const (
	sidebarWidth = 26
	headerHeight = 3
	inputHeight  = 3
	statusHeight = 1
)

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return vp
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the whole screen.
func (m *Model) View() string {
	if !m.ready {
		return "carregando..."
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	conversation := m.viewport.View()
	if m.typing.Active() {
		conversation += "\n" + m.typing.View()
	}
	input := m.renderInput()
	status := m.renderStatus()

	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, conversation)
	screen := lipgloss.JoinVertical(lipgloss.Left, header, main, input, status)

	if m.prompting {
		screen = m.overlayPrompt(screen)
	}
	if m.toasts.HasToasts() {
		screen += "\n" + m.toasts.Render(m.theme)
	}
	return screen
}

func (m *Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("swarmdeck")

	var session string
	if user, ok := m.registry.ActiveUser(); ok {
		session = m.theme.HeaderSubtitle.Render("  conversando como " + user.Name)
	}

	var badge string
	if agent := m.headerBadge; agent != nil {
		badge = "  " + m.theme.BadgeStyle(agent.StyleClass).Render(agent.Icon+" "+agent.Label)
	}

	return m.theme.Header.Width(m.width - 2).Render(title + session + badge)
}

func (m *Model) renderSidebar() string {
	sb := components.NewSidebar(m.theme)
	sb.Users = m.registry.Users()
	sb.ActiveID = m.registry.ActiveUserID()
	sb.Width = sidebarWidth
	sb.Height = m.viewport.Height
	return sb.Render()
}

func (m *Model) renderInput() string {
	prompt := m.theme.InputPrompt.Render("❯ ")
	return m.theme.InputContainer.Width(m.width - 2).Render(prompt + m.input.View())
}

func (m *Model) renderStatus() string {
	bar := components.NewStatusBar(m.theme)
	bar.Health = m.health
	bar.StoreBackend = m.storeBackend
	bar.Busy = m.busy
	bar.Width = m.width
	if user, ok := m.registry.ActiveUser(); ok {
		bar.ActiveUser = user.Name
	}
	return bar.Render()
}

// overlayPrompt renders the new-user prompt box under the header. A
// true overlay needs z-layers lipgloss does not have, so the box is
// drawn in place of the first transcript rows.
func (m *Model) overlayPrompt(screen string) string {
	box := m.theme.PromptBox.Render(
		m.theme.PromptTitle.Render("Novo usuário simulado") + "\n\n" +
			m.promptInput.View() + "\n\n" +
			m.theme.HeaderSubtitle.Render("Enter confirma · Esc cancela"),
	)

	lines := strings.Split(screen, "\n")
	boxLines := strings.Split(box, "\n")
	offset := headerHeight + 1
	for i, bl := range boxLines {
		if offset+i < len(lines) {
			lines[offset+i] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bl)
		}
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// refreshViewport re-projects the active conversation into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	renderer := components.NewMessageRenderer(m.theme)
	renderer.Width = m.viewport.Width
	renderer.ShowDebug = m.showDebug
	renderer.OpenSources = m.openSources

	history := m.registry.History(m.registry.ActiveUserID())
	views := transcript.ProjectAll(history)

	var blocks []string
	for _, view := range views {
		blocks = append(blocks, renderer.Render(view))
	}

	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
}
