// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"path/filepath"
	"testing"
)

// backends returns every Store implementation under test, each rooted in
// a throwaway location. The adapter contract must hold for all of them.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStoreWithDir failed: %v", err)
	}

	sqliteStore, err := NewSQLiteStoreWithPath(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStoreWithPath failed: %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"file":   fileStore,
		"sqlite": sqliteStore,
		"memory": NewMemStore(),
	}
}

func TestStoreContract_SetGet(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set("users", `[{"id":"u1"}]`); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			got, ok := store.Get("users")
			if !ok {
				t.Fatal("Get reported absent after Set")
			}
			if got != `[{"id":"u1"}]` {
				t.Errorf("Get = %q, want %q", got, `[{"id":"u1"}]`)
			}
		})
	}
}

func TestStoreContract_MissingKeyIsAbsent(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok := store.Get("never-written"); ok {
				t.Error("Get of missing key reported present")
			}
		})
	}
}

func TestStoreContract_Overwrite(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store.Set("active_user", "client789")
			store.Set("active_user", "user_blocked")

			got, _ := store.Get("active_user")
			if got != "user_blocked" {
				t.Errorf("Get after overwrite = %q, want %q", got, "user_blocked")
			}
		})
	}
}

func TestStoreContract_Remove(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store.Set("active_user", "client789")
			if err := store.Remove("active_user"); err != nil {
				t.Fatalf("Remove failed: %v", err)
			}
			if _, ok := store.Get("active_user"); ok {
				t.Error("key still present after Remove")
			}

			// Removing an absent key must be a no-op, not an error.
			if err := store.Remove("active_user"); err != nil {
				t.Errorf("Remove of absent key returned error: %v", err)
			}
		})
	}
}

func TestFileStore_ReopenSeesWrites(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStoreWithDir(dir)
	if err != nil {
		t.Fatalf("NewFileStoreWithDir failed: %v", err)
	}
	first.Set("users", `[]`)

	second, err := NewFileStoreWithDir(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if got, ok := second.Get("users"); !ok || got != `[]` {
		t.Errorf("reopened store Get = %q, %v", got, ok)
	}
}

func TestSQLiteStore_ReopenSeesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	first, err := NewSQLiteStoreWithPath(path)
	if err != nil {
		t.Fatalf("NewSQLiteStoreWithPath failed: %v", err)
	}
	first.Set("conversations", `{}`)
	first.Close()

	second, err := NewSQLiteStoreWithPath(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	if got, ok := second.Get("conversations"); !ok || got != `{}` {
		t.Errorf("reopened store Get = %q, %v", got, ok)
	}
}
