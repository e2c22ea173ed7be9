// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jeranaias/swarmdeck-tui/internal/util"
)

// =============================================================================
// STORE CONTRACT
// =============================================================================

// Store is the synchronous key/value contract the client persists through.
// Get reports absence via the boolean, never via an error. Remove of a
// missing key is a no-op.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore keeps one JSON document per key under a base directory,
// written atomically so a crash mid-write never corrupts other keys.
type FileStore struct {
	// BaseDir is the directory holding one file per key.
	// Default: ~/.swarmdeck/state/
	BaseDir string
}

// NewFileStore creates a file store under the user's home directory.
func NewFileStore() (*FileStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewFileStoreWithDir(filepath.Join(homeDir, ".swarmdeck", "state"))
}

// NewFileStoreWithDir creates a file store rooted at a custom directory.
func NewFileStoreWithDir(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{BaseDir: baseDir}, nil
}

// Get reads the value stored for key. A missing file is absence, not an
// error; unreadable files are also treated as absent so a damaged entry
// degrades to defaults instead of wedging startup.
func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes the value for key atomically.
func (s *FileStore) Set(key, value string) error {
	if err := util.AtomicWriteFile(s.filePath(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("store write for %q failed: %w", key, err)
	}
	return nil
}

// Remove deletes the entry for key. Removing an absent key is a no-op.
func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.filePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store remove for %q failed: %w", key, err)
	}
	return nil
}

func (s *FileStore) filePath(key string) string {
	return filepath.Join(s.BaseDir, key+".json")
}

// =============================================================================
// MEMORY STORE
// =============================================================================

// MemStore is an ephemeral in-memory store. Used for tests and for
// --ephemeral runs where nothing should touch disk.
type MemStore struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
