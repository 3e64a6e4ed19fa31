package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tasklist/log"
)

// JSONStore implements Store using a JSON file
type JSONStore struct {
	filename string
	data     map[string]string
	mu       sync.RWMutex
}

// NewJSONStore creates or opens a JSON-backed store.
// A file that does not parse is treated as an empty store; the next Set rewrites it.
func NewJSONStore(filename string) (*JSONStore, error) {
	store := &JSONStore{
		filename: filename,
		data:     map[string]string{},
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	// Try to load existing file
	if err := store.load(); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("failed to load store: %w", err)
		}
		log.Warn().Err(err).Str("path", filename).Msg("store file is corrupt, starting empty")
		store.data = map[string]string{}
	}

	return store, nil
}

func (s *JSONStore) load() error {
	data, err := os.ReadFile(s.filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	loaded := map[string]string{}
	if err := json.Unmarshal(data, &loaded); err != nil {
		return err
	}
	if loaded == nil {
		// "null" decodes without error into a nil map
		loaded = map[string]string{}
	}
	s.data = loaded
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	// Write to a sibling temp file and rename so a crash never leaves a torn file
	tmp := s.filename + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.filename)
}

// Get returns the value stored under key
func (s *JSONStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	return value, ok, nil
}

// Set writes value under key and flushes the file
func (s *JSONStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	s.data[key] = value
	if err := s.save(); err != nil {
		// Keep memory consistent with disk
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return fmt.Errorf("failed to write %s: %w", s.filename, err)
	}

	return nil
}

// Delete removes key
func (s *JSONStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	if !had {
		return nil
	}

	delete(s.data, key)
	if err := s.save(); err != nil {
		s.data[key] = prev
		return fmt.Errorf("failed to write %s: %w", s.filename, err)
	}

	return nil
}

// Close closes the store
func (s *JSONStore) Close() error {
	// JSON store doesn't need cleanup, but interface requires it
	return nil
}
