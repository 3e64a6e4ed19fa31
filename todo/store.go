// Package todo holds the in-memory task list and its edit session.
//
// A Store is owned by one goroutine. Every state change is published to
// subscribers synchronously, after the change has been applied.
package todo

import (
	"iter"
	"slices"
	"strings"
	"time"

	"tasklist/storage"
)

// EditSession tracks the one task currently being renamed
type EditSession struct {
	TargetID int64
	Draft    string
}

// Store is the ordered, in-memory task list
type Store struct {
	tasks  []storage.Task
	edit   *EditSession
	lastID int64
	now    func() time.Time

	subscribers map[int]func(Event)
	nextSubID   int
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for ids and createdAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store seeded with tasks, typically the result of Snapshot.Load
func NewStore(tasks []storage.Task, opts ...Option) *Store {
	s := &Store{
		tasks:       storage.CloneTasks(tasks),
		now:         time.Now,
		subscribers: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, t := range s.tasks {
		s.lastID = max(s.lastID, t.ID)
	}

	return s
}

// nextID returns a time-based id that is strictly greater than every id issued so far
func (s *Store) nextID(now time.Time) int64 {
	id := max(now.UnixMilli(), s.lastID+1)
	s.lastID = id
	return id
}

func (s *Store) indexOf(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new active task. Whitespace-only text is ignored.
func (s *Store) Add(text string) (storage.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return storage.Task{}, false
	}

	now := s.now()
	task := storage.Task{
		ID:        s.nextID(now),
		Text:      text,
		Completed: false,
		CreatedAt: storage.Timestamp(now),
	}
	s.tasks = append(s.tasks, task)

	s.publish(EventTasksChanged)
	return task, true
}

// Toggle flips the completion flag of task id
func (s *Store) Toggle(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.tasks[i].Completed = !s.tasks[i].Completed

	s.publish(EventTasksChanged)
	return true
}

// Delete removes task id, closing the edit session if it targeted that task
func (s *Store) Delete(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	if s.edit != nil && s.edit.TargetID == id {
		s.edit = nil
	}

	s.publish(EventTasksChanged)
	return true
}

// ClearCompleted removes every completed task and returns how many were removed
func (s *Store) ClearCompleted() int {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t storage.Task) bool {
		return t.Completed
	})

	removed := before - len(s.tasks)
	if removed == 0 {
		return 0
	}

	if s.edit != nil && s.indexOf(s.edit.TargetID) < 0 {
		s.edit = nil
	}

	s.publish(EventTasksChanged)
	return removed
}

// Filtered yields the tasks matching mode in list order. The sequence is
// evaluated lazily against the list as it is when iteration happens.
func (s *Store) Filtered(mode FilterMode) iter.Seq[storage.Task] {
	return func(yield func(storage.Task) bool) {
		for _, t := range s.tasks {
			if !mode.Match(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// RemainingCount returns the number of tasks not yet completed
func (s *Store) RemainingCount() int {
	n := 0
	for _, t := range s.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// HasCompleted reports whether at least one task is completed
func (s *Store) HasCompleted() bool {
	return slices.ContainsFunc(s.tasks, func(t storage.Task) bool {
		return t.Completed
	})
}

// Tasks returns a copy of the full list in insertion order
func (s *Store) Tasks() []storage.Task {
	return storage.CloneTasks(s.tasks)
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns task id
func (s *Store) Get(id int64) (storage.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return storage.Task{}, false
	}
	return s.tasks[i], true
}
