// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}
	if theme.Header.GetPaddingLeft() != 2 {
		t.Errorf("Header padding = %d, want 2", theme.Header.GetPaddingLeft())
	}
}

func TestBadgeStyleClasses(t *testing.T) {
	theme := NewTheme()

	for _, class := range []string{"knowledge", "support", "both", "router", "error", "agent", ""} {
		style := theme.BadgeStyle(class)
		if !style.GetBold() {
			t.Errorf("BadgeStyle(%q) is not bold", class)
		}
	}
}
