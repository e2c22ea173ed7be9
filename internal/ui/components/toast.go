// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Non-blocking toasts in the corner of the screen, inspired by
// lazygit's popup system. Used for persistence warnings and
// create-user failures; send failures go into the transcript instead.
package components

import (
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/swarmdeck-tui/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastKindError is an error toast (rose color)
	ToastKindError ToastKind = iota
	// ToastKindWarning is a warning toast (amber color)
	ToastKindWarning
)

// ErrorToastDuration is the auto-dismiss duration for error toasts.
const ErrorToastDuration = 8 * time.Second

// WarningToastDuration is the auto-dismiss duration for warning toasts.
const WarningToastDuration = 6 * time.Second

// Toast represents a non-blocking notification that auto-dismisses.
type Toast struct {
	ID        int
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the toast should be dismissed.
func (t *Toast) IsExpired() bool {
	return time.Since(t.CreatedAt) >= t.Duration
}

// =============================================================================
// TOAST MANAGER
// =============================================================================

// ToastManager manages the visible toast stack, newest first.
type ToastManager struct {
	toasts    []Toast
	nextID    int
	maxToasts int
	mutex     sync.Mutex
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		nextID:    1,
		maxToasts: 3,
	}
}

// AddError adds an error toast and returns its ID.
func (m *ToastManager) AddError(message string) int {
	return m.add(Toast{Message: message, Kind: ToastKindError, Duration: ErrorToastDuration})
}

// AddWarning adds a warning toast and returns its ID.
func (m *ToastManager) AddWarning(message string) int {
	return m.add(Toast{Message: message, Kind: ToastKindWarning, Duration: WarningToastDuration})
}

func (m *ToastManager) add(toast Toast) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	toast.ID = m.nextID
	m.nextID++
	toast.CreatedAt = time.Now()

	m.toasts = append([]Toast{toast}, m.toasts...)
	if len(m.toasts) > m.maxToasts {
		m.toasts = m.toasts[:m.maxToasts]
	}
	return toast.ID
}

// Tick removes expired toasts and returns the remaining ones.
func (m *ToastManager) Tick() []Toast {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if !t.IsExpired() {
			kept = append(kept, t)
		}
	}
	m.toasts = kept

	out := make([]Toast, len(m.toasts))
	copy(out, m.toasts)
	return out
}

// HasToasts reports whether any toast is currently visible.
func (m *ToastManager) HasToasts() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.toasts) > 0
}

// Render renders the toast stack for the given theme.
func (m *ToastManager) Render(theme *styles.Theme) string {
	m.mutex.Lock()
	toasts := make([]Toast, len(m.toasts))
	copy(toasts, m.toasts)
	m.mutex.Unlock()

	var lines []string
	for _, t := range toasts {
		switch t.Kind {
		case ToastKindWarning:
			lines = append(lines, theme.WarningToast.Render("⚠ "+t.Message))
		default:
			lines = append(lines, theme.ErrorToast.Render("✗ "+t.Message))
		}
	}
	return strings.Join(lines, "\n")
}
