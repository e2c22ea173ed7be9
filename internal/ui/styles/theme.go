// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ErrorBubble     lipgloss.Style
	MessageMeta     lipgloss.Style
	Timestamp       lipgloss.Style

	// Inline markup styles
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	InlineCode lipgloss.Style
	Link       lipgloss.Style

	// ==========================================================================
	// SIDEBAR (USER ROSTER) STYLES
	// ==========================================================================

	Sidebar          lipgloss.Style
	SidebarTitle     lipgloss.Style
	UserItem         lipgloss.Style
	UserItemSelected lipgloss.Style
	UserAvatar       lipgloss.Style
	UserID           lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar     lipgloss.Style
	HealthOnline  lipgloss.Style
	HealthOffline lipgloss.Style
	HealthUnknown lipgloss.Style
	ShortcutKey   lipgloss.Style
	ShortcutDesc  lipgloss.Style

	// ==========================================================================
	// SOURCES AND DEBUG PANEL STYLES
	// ==========================================================================

	SourceTag   lipgloss.Style
	SourceList  lipgloss.Style
	DebugPanel  lipgloss.Style
	DebugTitle  lipgloss.Style
	DebugField  lipgloss.Style
	DebugValue  lipgloss.Style

	// ==========================================================================
	// SPINNER, TOAST, AND OVERLAY STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	TypingText   lipgloss.Style
	ErrorToast   lipgloss.Style
	WarningToast lipgloss.Style
	PromptBox    lipgloss.Style
	PromptTitle  lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(ErrorBubbleFg).
		Background(ErrorBubbleBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Rose).
		BorderLeft(true).
		PaddingLeft(2)

	t.MessageMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Inline markup
	t.Bold = lipgloss.NewStyle().Bold(true)
	t.Italic = lipgloss.NewStyle().Italic(true)
	t.InlineCode = lipgloss.NewStyle().
		Foreground(Amber).
		Background(SurfaceBright)
	t.Link = lipgloss.NewStyle().
		Foreground(Cyan).
		Underline(true)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay).
		PaddingRight(1)

	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.UserItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.UserItemSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Bold(true).
		Padding(0, 1)

	t.UserAvatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.UserID = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.HealthOnline = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.HealthOffline = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.HealthUnknown = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Sources and debug
	t.SourceTag = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceBright).
		Padding(0, 1)

	t.SourceList = lipgloss.NewStyle().
		Foreground(Cyan).
		PaddingLeft(2)

	t.DebugPanel = lipgloss.NewStyle().
		Foreground(TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(OverlayDim).
		PaddingLeft(1)

	t.DebugTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.DebugField = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.DebugValue = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Spinner, toasts, and prompts
	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.TypingText = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.ErrorToast = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Rose).
		Bold(true).
		Padding(0, 1)

	t.WarningToast = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Amber).
		Padding(0, 1)

	t.PromptBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.PromptTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)
}

// BadgeStyle returns the style for an agent badge's style class.
func (t *Theme) BadgeStyle(class string) lipgloss.Style {
	color := BadgeGeneric
	switch class {
	case "knowledge":
		color = BadgeKnowledge
	case "support":
		color = BadgeSupport
	case "both":
		color = BadgeBoth
	case "router":
		color = BadgeRouter
	case "error":
		color = BadgeError
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true)
}
