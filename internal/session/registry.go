// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jeranaias/swarmdeck-tui/internal/gateway"
	"github.com/jeranaias/swarmdeck-tui/internal/model"
	"github.com/jeranaias/swarmdeck-tui/internal/storage"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUserNotFound means the given user ID is not in the roster.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser means the requested user ID is already taken locally.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrEmptyName means a user was requested with a blank display name.
	ErrEmptyName = errors.New("user name must not be empty")
)

// =============================================================================
// REGISTRY
// =============================================================================

// UserProvisioner registers a new simulated user with the backend.
// *gateway.Client satisfies it; tests substitute a fake.
type UserProvisioner interface {
	CreateUser(ctx context.Context, name, requestedID string) (*gateway.CreatedUser, error)
}

// Registry is the single holder of session state. All reads hand out
// copies, so callers can never mutate the roster or a conversation
// behind the registry's back.
//
// Registry is thread-safe, though the TUI drives it from a single
// goroutine.
type Registry struct {
	mu sync.Mutex

	users         []model.User
	activeUserID  string
	conversations map[string][]model.Message

	store *storage.StateStore

	// onWarning receives persistence failures. Mutations still apply
	// in memory when a write fails; the operator just loses durability
	// until the next successful write.
	onWarning func(error)
}

// NewRegistry creates an empty registry backed by the given store.
// Call LoadOrSeed before use.
func NewRegistry(store *storage.StateStore) *Registry {
	return &Registry{
		conversations: make(map[string][]model.Message),
		store:         store,
	}
}

// OnWarning sets the callback invoked when a store write fails.
func (r *Registry) OnWarning(fn func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onWarning = fn
}

func (r *Registry) warn(err error) {
	if r.onWarning != nil && err != nil {
		r.onWarning(err)
	}
}

// =============================================================================
// LOADING AND SEEDING
// =============================================================================

// LoadOrSeed restores the roster, conversations, and active selection
// from the store. A store with no roster is seeded with the default
// simulated users. An active selection pointing at a user that no
// longer exists falls back to the first user in the roster.
func (r *Registry) LoadOrSeed() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.store.LoadUsers()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		users = model.DefaultUsers()
		if err := r.store.SaveUsers(users); err != nil {
			return err
		}
	}
	r.users = users

	conversations, err := r.store.LoadConversations()
	if err != nil {
		return err
	}
	r.conversations = conversations
	seeded := false
	for _, u := range r.users {
		if _, ok := r.conversations[u.ID]; !ok {
			r.conversations[u.ID] = []model.Message{}
			seeded = true
		}
	}
	if seeded {
		r.warn(r.store.SaveConversations(r.conversations))
	}

	active, _ := r.store.LoadActiveUser()
	if !r.hasUserLocked(active) {
		active = r.users[0].ID
		r.warn(r.store.SaveActiveUser(active))
	}
	r.activeUserID = active

	return nil
}

// =============================================================================
// ROSTER
// =============================================================================

// Users returns a copy of the roster in insertion order.
func (r *Registry) Users() []model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

// ActiveUser returns the currently selected user.
func (r *Registry) ActiveUser() (model.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == r.activeUserID {
			return u, true
		}
	}
	return model.User{}, false
}

// ActiveUserID returns the ID of the currently selected user.
func (r *Registry) ActiveUserID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeUserID
}

// SelectUser switches the active session to the given user, persists
// the selection, and returns the selected user. Conversations of other
// users are untouched.
func (r *Registry) SelectUser(id string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			r.activeUserID = id
			r.warn(r.store.SaveActiveUser(id))
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// CreateUser provisions a new simulated user through the backend and,
// on success, adds it to the roster and persists the roster. On any
// failure the registry is left exactly as it was.
func (r *Registry) CreateUser(ctx context.Context, backend UserProvisioner, name, requestedID string) (model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.User{}, ErrEmptyName
	}

	r.mu.Lock()
	if requestedID != "" && r.hasUserLocked(requestedID) {
		r.mu.Unlock()
		return model.User{}, ErrDuplicateUser
	}
	r.mu.Unlock()

	// Backend round-trip happens outside the lock; a slow backend must
	// not block roster reads.
	created, err := backend.CreateUser(ctx, name, requestedID)
	if err != nil {
		return model.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasUserLocked(created.ID) {
		return model.User{}, ErrDuplicateUser
	}
	user := model.NewUser(created.ID, created.Name)
	r.users = append(r.users, user)
	r.conversations[user.ID] = []model.Message{}
	r.warn(r.store.SaveUsers(r.users))
	r.warn(r.store.SaveConversations(r.conversations))
	return user, nil
}

// Reset wipes the whole registry: roster, every conversation, and the
// active session pointer, in memory and in the store. Not reachable
// from the UI; callers embedding the registry use it to start over.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = nil
	r.activeUserID = ""
	r.conversations = make(map[string][]model.Message)
	r.warn(r.store.SaveUsers([]model.User{}))
	r.warn(r.store.SaveConversations(r.conversations))
	r.warn(r.store.ClearActiveUser())
}

func (r *Registry) hasUserLocked(id string) bool {
	if id == "" {
		return false
	}
	for _, u := range r.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// =============================================================================
// CONVERSATION LOG
// =============================================================================

// History returns the conversation of the given user in append order.
// Messages are normalized copies: legacy single-agent records come back
// with the agent list filled in, and the stored records are untouched.
// A user with no conversation yet gets an empty slice, never nil.
func (r *Registry) History(userID string) []model.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.conversations[userID]
	out := make([]model.Message, 0, len(stored))
	for _, msg := range stored {
		out = append(out, msg.Normalized())
	}
	return out
}

// Append adds one message to the end of the given user's conversation
// and persists every conversation.
func (r *Registry) Append(userID string, msg model.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conversations[userID] = append(r.conversations[userID], msg)
	r.warn(r.store.SaveConversations(r.conversations))
}

// Clear resets the given user's conversation to empty. The entry stays
// in the map; other users keep their conversations.
func (r *Registry) Clear(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conversations[userID] = []model.Message{}
	r.warn(r.store.SaveConversations(r.conversations))
}
