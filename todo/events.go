package todo

import (
	"tasklist/log"
	"tasklist/storage"
)

// EventType says what part of the store changed
type EventType string

const (
	// EventTasksChanged means the task list itself changed and should be persisted
	EventTasksChanged EventType = "tasks-changed"
	// EventEditChanged means only the transient edit session changed
	EventEditChanged EventType = "edit-changed"
)

// Event is published to subscribers after every state change
type Event struct {
	Type  EventType
	Tasks []storage.Task
	Edit  *EditSession
}

// Subscribe registers fn to be called after every change.
// Returns an unsubscribe function.
func (s *Store) Subscribe(fn func(Event)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		delete(s.subscribers, id)
	}
}

func (s *Store) publish(t EventType) {
	if len(s.subscribers) == 0 {
		return
	}

	event := Event{Type: t}
	if t == EventTasksChanged {
		event.Tasks = storage.CloneTasks(s.tasks)
	}
	if s.edit != nil {
		session := *s.edit
		event.Edit = &session
	}

	// Notify in subscription order
	for id := 0; id < s.nextSubID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			fn(event)
		}
	}
}

// Saver persists a full task list
type Saver interface {
	Save(tasks []storage.Task) error
}

// AutoSave writes the list through saver after every list change. Filter and
// edit-session changes are not written. Save errors are logged and swallowed
// so a failing disk never takes the session down.
func AutoSave(s *Store, saver Saver) func() {
	return s.Subscribe(func(e Event) {
		if e.Type != EventTasksChanged {
			return
		}
		if err := saver.Save(e.Tasks); err != nil {
			log.Error().Err(err).Int("count", len(e.Tasks)).Msg("failed to save tasks")
		}
	})
}
