package storage

import (
	"encoding/json"
	"fmt"

	"tasklist/log"
)

// Snapshot persists the whole task list as one serialized value in a Store
type Snapshot struct {
	store Store
	key   string
}

// NewSnapshot returns a Snapshot that reads and writes key in store.
// An empty key falls back to DefaultKey.
func NewSnapshot(store Store, key string) *Snapshot {
	if key == "" {
		key = DefaultKey
	}
	return &Snapshot{store: store, key: key}
}

// Key returns the storage key of the snapshot
func (s *Snapshot) Key() string {
	return s.key
}

// Load returns the previously saved tasks. Absent, unreadable or malformed
// data yields an empty list; the failure is logged, never returned.
func (s *Snapshot) Load() []Task {
	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("failed to read saved tasks, starting empty")
		return []Task{}
	}
	if !ok {
		return []Task{}
	}

	var tasks []Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("saved tasks are malformed, starting empty")
		return []Task{}
	}
	if tasks == nil {
		// "null" is valid JSON but not a list
		return []Task{}
	}

	valid := dropInvalid(tasks)
	if dropped := len(tasks) - len(valid); dropped > 0 {
		log.Warn().Str("key", s.key).Int("dropped", dropped).Msg("skipped saved tasks without a unique id")
	}

	log.Debug().Str("key", s.key).Int("count", len(valid)).Msg("loaded tasks")
	return valid
}

// dropInvalid keeps tasks with a positive id, first occurrence wins
func dropInvalid(tasks []Task) []Task {
	seen := make(map[int64]struct{}, len(tasks))
	valid := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID <= 0 {
			continue
		}
		if _, dup := seen[task.ID]; dup {
			continue
		}
		seen[task.ID] = struct{}{}
		valid = append(valid, task)
	}
	return valid
}

// Save serializes tasks and writes them, overwriting any prior value
func (s *Snapshot) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	if err := s.store.Set(s.key, string(data)); err != nil {
		return err
	}

	log.Debug().Str("key", s.key).Int("count", len(tasks)).Msg("saved tasks")
	return nil
}
