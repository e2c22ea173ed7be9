// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/swarmdeck-tui/internal/model"
	"github.com/jeranaias/swarmdeck-tui/internal/ui/styles"
	"github.com/jeranaias/swarmdeck-tui/internal/util"
)

// =============================================================================
// USER SIDEBAR COMPONENT
// =============================================================================

// Sidebar renders the simulated-user roster with the active session
// highlighted.
type Sidebar struct {
	Users    []model.User
	ActiveID string
	Width    int
	Height   int

	theme *styles.Theme
}

// NewSidebar creates a sidebar with the given theme.
func NewSidebar(theme *styles.Theme) Sidebar {
	return Sidebar{Width: 24, theme: theme}
}

// Render renders the roster column.
func (s Sidebar) Render() string {
	var b strings.Builder

	b.WriteString(s.theme.SidebarTitle.Render("USUÁRIOS"))
	b.WriteString("\n\n")

	inner := s.Width - 3
	if inner < 8 {
		inner = 8
	}

	for _, u := range s.Users {
		avatar := s.theme.UserAvatar.Render(u.Avatar)
		name := util.TruncateWidth(u.Name, inner-4)
		line := avatar + " " + name

		if u.ID == s.ActiveID {
			b.WriteString(s.theme.UserItemSelected.Width(inner).Render(line))
		} else {
			b.WriteString(s.theme.UserItem.Width(inner).Render(line))
		}
		b.WriteString("\n")
		b.WriteString(s.theme.UserID.PaddingLeft(3).Render(util.TruncateWidth(u.ID, inner-3)))
		b.WriteString("\n")
	}

	body := b.String()
	style := s.theme.Sidebar.Width(s.Width)
	if s.Height > 0 {
		style = style.Height(s.Height)
	}
	return style.Render(body)
}
