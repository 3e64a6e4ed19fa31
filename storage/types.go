package storage

import (
	"time"
)

// DefaultKey is the key the task list snapshot is stored under
const DefaultKey = "todos"

// Task represents a single to-do item
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Timestamp normalizes t to the precision kept on disk (UTC milliseconds)
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// CloneTasks returns a copy of tasks that never aliases the input
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
