// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// User is a simulated end-user archetype. Users are immutable after
// creation; the roster only grows, or is cleared wholesale.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"` // single-character glyph
}

// NewUser builds a User with the avatar derived from the first rune of
// the name, upper-cased. An empty name yields a "?" avatar.
func NewUser(id, name string) User {
	return User{
		ID:     id,
		Name:   name,
		Avatar: AvatarFor(name),
	}
}

// AvatarFor returns the single-character glyph for a display name.
func AvatarFor(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "?"
	}
	runes := []rune(strings.ToUpper(trimmed))
	return string(runes[0])
}

// DefaultUsers is the fixed seed roster used when no users are stored.
func DefaultUsers() []User {
	return []User{
		{ID: "client789", Name: "João Silva", Avatar: "J"},
		{ID: "user_blocked", Name: "Conta Bloqueada", Avatar: "B"},
	}
}
