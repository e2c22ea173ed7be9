// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"fmt"

	"github.com/jeranaias/swarmdeck-tui/internal/model"
)

// The three logical keys the client persists under. There is no version
// key; schema evolution relies on tolerant reads (absent or old-shape
// fields decode to defaults), so writers must keep these shapes
// backward-readable.
const (
	keyUsers         = "users"
	keyConversations = "conversations"
	keyActiveUser    = "active_user"
)

// =============================================================================
// STATE STORE
// =============================================================================

// StateStore reads and writes the application state through a Store.
// Every save re-serializes the entire relevant collection: partial or
// differential writes are not supported, so each persisted key is always
// a complete, internally consistent document.
type StateStore struct {
	store Store
}

// NewStateStore wraps a Store with the application state schema.
func NewStateStore(store Store) *StateStore {
	return &StateStore{store: store}
}

// =============================================================================
// USER ROSTER
// =============================================================================

// LoadUsers returns the persisted roster, or nil when nothing is stored.
func (s *StateStore) LoadUsers() ([]model.User, error) {
	raw, ok := s.store.Get(keyUsers)
	if !ok {
		return nil, nil
	}

	var users []model.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("failed to decode stored users: %w", err)
	}
	return users, nil
}

// SaveUsers persists the full roster.
func (s *StateStore) SaveUsers(users []model.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	return s.store.Set(keyUsers, string(data))
}

// =============================================================================
// CONVERSATIONS MAP
// =============================================================================

// LoadConversations returns the persisted user-id -> message-list map.
// An absent entry yields an empty map, never nil. Messages keep whatever
// schema version they were written in; normalization happens at the
// conversation-log read boundary, not here.
func (s *StateStore) LoadConversations() (map[string][]model.Message, error) {
	raw, ok := s.store.Get(keyConversations)
	if !ok {
		return map[string][]model.Message{}, nil
	}

	var conversations map[string][]model.Message
	if err := json.Unmarshal([]byte(raw), &conversations); err != nil {
		return nil, fmt.Errorf("failed to decode stored conversations: %w", err)
	}
	if conversations == nil {
		conversations = map[string][]model.Message{}
	}
	return conversations, nil
}

// SaveConversations persists the entire conversations map.
func (s *StateStore) SaveConversations(conversations map[string][]model.Message) error {
	data, err := json.Marshal(conversations)
	if err != nil {
		return fmt.Errorf("failed to encode conversations: %w", err)
	}
	return s.store.Set(keyConversations, string(data))
}

// =============================================================================
// ACTIVE USER
// =============================================================================

// LoadActiveUser returns the last-active user id, if one is stored.
func (s *StateStore) LoadActiveUser() (string, bool) {
	id, ok := s.store.Get(keyActiveUser)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// SaveActiveUser persists the active user id.
func (s *StateStore) SaveActiveUser(id string) error {
	return s.store.Set(keyActiveUser, id)
}

// ClearActiveUser removes the stored active user id.
func (s *StateStore) ClearActiveUser() error {
	return s.store.Remove(keyActiveUser)
}
