// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/swarmdeck-tui/internal/gateway"
	"github.com/jeranaias/swarmdeck-tui/internal/model"
	"github.com/jeranaias/swarmdeck-tui/internal/storage"
)

// fakeProvisioner stands in for the backend during roster tests.
type fakeProvisioner struct {
	created *gateway.CreatedUser
	err     error
	calls   int
}

func (f *fakeProvisioner) CreateUser(ctx context.Context, name, requestedID string) (*gateway.CreatedUser, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.created != nil {
		return f.created, nil
	}
	id := requestedID
	if id == "" {
		id = "user_gen1"
	}
	return &gateway.CreatedUser{ID: id, Name: name}, nil
}

func newTestRegistry(t *testing.T) (*Registry, *storage.StateStore) {
	t.Helper()
	store := storage.NewStateStore(storage.NewMemStore())
	reg := NewRegistry(store)
	require.NoError(t, reg.LoadOrSeed())
	return reg, store
}

// =============================================================================
// LOADING AND SEEDING TESTS
// =============================================================================

func TestLoadOrSeedDefaults(t *testing.T) {
	reg, store := newTestRegistry(t)

	users := reg.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "client789", users[0].ID)
	assert.Equal(t, "João Silva", users[0].Name)
	assert.Equal(t, "user_blocked", users[1].ID)

	assert.Equal(t, "client789", reg.ActiveUserID())

	// Seeding must be durable, not just in memory.
	persisted, err := store.LoadUsers()
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
}

func TestLoadOrSeedRestoresExistingState(t *testing.T) {
	mem := storage.NewMemStore()
	store := storage.NewStateStore(mem)

	first := NewRegistry(store)
	require.NoError(t, first.LoadOrSeed())
	first.Append("client789", model.NewUserMessage("primeira mensagem"))
	first.Append("client789", model.NewAssistantMessage("resposta", []string{"knowledge"}, nil, nil))
	_, err := first.SelectUser("user_blocked")
	require.NoError(t, err)

	// Fresh registry over the same store: everything comes back.
	second := NewRegistry(store)
	require.NoError(t, second.LoadOrSeed())

	assert.Equal(t, "user_blocked", second.ActiveUserID())
	history := second.History("client789")
	require.Len(t, history, 2)
	assert.Equal(t, "primeira mensagem", history[0].Content)
	assert.Equal(t, model.RoleAssistant, history[1].Role)
}

func TestLoadOrSeedActiveUserFallback(t *testing.T) {
	store := storage.NewStateStore(storage.NewMemStore())
	require.NoError(t, store.SaveUsers(model.DefaultUsers()))
	require.NoError(t, store.SaveActiveUser("gone_user"))

	reg := NewRegistry(store)
	require.NoError(t, reg.LoadOrSeed())

	assert.Equal(t, "client789", reg.ActiveUserID())
}

// =============================================================================
// ROSTER TESTS
// =============================================================================

func TestSelectUser(t *testing.T) {
	reg, store := newTestRegistry(t)

	selected, err := reg.SelectUser("user_blocked")
	require.NoError(t, err)
	assert.Equal(t, "Conta Bloqueada", selected.Name)
	assert.Equal(t, "user_blocked", reg.ActiveUserID())

	active, ok := reg.ActiveUser()
	require.True(t, ok)
	assert.Equal(t, "Conta Bloqueada", active.Name)

	saved, ok := store.LoadActiveUser()
	require.True(t, ok)
	assert.Equal(t, "user_blocked", saved)
}

func TestSelectUserNotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.SelectUser("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, "client789", reg.ActiveUserID(), "selection must be unchanged")
}

func TestCreateUser(t *testing.T) {
	reg, store := newTestRegistry(t)
	backend := &fakeProvisioner{created: &gateway.CreatedUser{ID: "user_maria", Name: "Maria Souza"}}

	user, err := reg.CreateUser(context.Background(), backend, "Maria Souza", "")
	require.NoError(t, err)
	assert.Equal(t, "user_maria", user.ID)
	assert.Equal(t, "M", user.Avatar)

	users := reg.Users()
	require.Len(t, users, 3)
	assert.Equal(t, "user_maria", users[2].ID)

	persisted, err := store.LoadUsers()
	require.NoError(t, err)
	assert.Len(t, persisted, 3)
}

func TestCreateUserEmptyName(t *testing.T) {
	reg, _ := newTestRegistry(t)
	backend := &fakeProvisioner{}

	_, err := reg.CreateUser(context.Background(), backend, "   ", "")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Zero(t, backend.calls, "backend must not be called for invalid input")
}

func TestCreateUserLocalDuplicate(t *testing.T) {
	reg, _ := newTestRegistry(t)
	backend := &fakeProvisioner{}

	_, err := reg.CreateUser(context.Background(), backend, "Outro João", "client789")
	assert.ErrorIs(t, err, ErrDuplicateUser)
	assert.Zero(t, backend.calls)
	assert.Len(t, reg.Users(), 2)
}

func TestCreateUserBackendFailureLeavesRosterIntact(t *testing.T) {
	reg, store := newTestRegistry(t)
	backend := &fakeProvisioner{err: errors.New("connection refused")}

	_, err := reg.CreateUser(context.Background(), backend, "Maria Souza", "")
	require.Error(t, err)

	assert.Len(t, reg.Users(), 2)
	persisted, perr := store.LoadUsers()
	require.NoError(t, perr)
	assert.Len(t, persisted, 2)
}

// =============================================================================
// CONVERSATION LOG TESTS
// =============================================================================

func TestAppendOrderAcrossUsers(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.Append("client789", model.NewUserMessage("a1"))
	reg.Append("user_blocked", model.NewUserMessage("b1"))
	reg.Append("client789", model.NewAssistantMessage("a2", []string{"support"}, nil, nil))
	reg.Append("user_blocked", model.NewAssistantMessage("b2", []string{"error"}, nil, nil))

	a := reg.History("client789")
	require.Len(t, a, 2)
	assert.Equal(t, "a1", a[0].Content)
	assert.Equal(t, "a2", a[1].Content)

	b := reg.History("user_blocked")
	require.Len(t, b, 2)
	assert.Equal(t, "b1", b[0].Content)
	assert.Equal(t, "b2", b[1].Content)
}

func TestHistoryEmptyNeverNil(t *testing.T) {
	reg, _ := newTestRegistry(t)

	history := reg.History("client789")
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestHistoryNormalizesLegacyAgent(t *testing.T) {
	store := storage.NewStateStore(storage.NewMemStore())
	legacy := model.Message{
		Role:        model.RoleAssistant,
		Content:     "resposta antiga",
		Timestamp:   time.Date(2024, 11, 3, 10, 0, 0, 0, time.UTC),
		LegacyAgent: "knowledge",
	}
	require.NoError(t, store.SaveConversations(map[string][]model.Message{
		"client789": {legacy},
	}))
	require.NoError(t, store.SaveUsers(model.DefaultUsers()))

	reg := NewRegistry(store)
	require.NoError(t, reg.LoadOrSeed())

	history := reg.History("client789")
	require.Len(t, history, 1)
	assert.Equal(t, []string{"knowledge"}, history[0].Agents)

	// A later append must not rewrite the stored legacy record.
	reg.Append("client789", model.NewUserMessage("nova"))
	persisted, err := store.LoadConversations()
	require.NoError(t, err)
	assert.Equal(t, "knowledge", persisted["client789"][0].LegacyAgent)
	assert.Empty(t, persisted["client789"][0].Agents)
}

func TestClearAffectsOnlyOneUser(t *testing.T) {
	reg, store := newTestRegistry(t)

	reg.Append("client789", model.NewUserMessage("a"))
	reg.Append("user_blocked", model.NewUserMessage("b"))

	reg.Clear("client789")

	assert.Empty(t, reg.History("client789"))
	assert.Len(t, reg.History("user_blocked"), 1)

	persisted, err := store.LoadConversations()
	require.NoError(t, err)
	cleared, hasCleared := persisted["client789"]
	assert.True(t, hasCleared, "cleared conversation keeps its key")
	assert.Empty(t, cleared)
	assert.Len(t, persisted["user_blocked"], 1)
}

func TestResetWipesRegistryAndStore(t *testing.T) {
	reg, store := newTestRegistry(t)

	reg.Append("client789", model.NewUserMessage("oi"))
	_, err := reg.SelectUser("client789")
	require.NoError(t, err)

	reg.Reset()

	assert.Empty(t, reg.Users())
	assert.Empty(t, reg.ActiveUserID())
	assert.Empty(t, reg.History("client789"))

	users, err := store.LoadUsers()
	require.NoError(t, err)
	assert.Empty(t, users)

	conversations, err := store.LoadConversations()
	require.NoError(t, err)
	assert.Empty(t, conversations)

	_, ok := store.LoadActiveUser()
	assert.False(t, ok)

	// A fresh load after a reset seeds the defaults again.
	next := NewRegistry(store)
	require.NoError(t, next.LoadOrSeed())
	assert.Len(t, next.Users(), 2)
}

func TestWarningHookFiresOnPersistFailure(t *testing.T) {
	store := storage.NewStateStore(failingStore{})
	reg := NewRegistry(store)

	var warned error
	reg.OnWarning(func(err error) { warned = err })

	reg.users = model.DefaultUsers()
	reg.activeUserID = "client789"

	reg.Append("client789", model.NewUserMessage("oi"))

	assert.Error(t, warned)
	assert.Len(t, reg.History("client789"), 1, "mutation applies in memory despite store failure")
}

// failingStore rejects every write.
type failingStore struct{}

func (failingStore) Get(key string) (string, bool)  { return "", false }
func (failingStore) Set(key, value string) error    { return errors.New("disk full") }
func (failingStore) Remove(key string) error        { return errors.New("disk full") }
