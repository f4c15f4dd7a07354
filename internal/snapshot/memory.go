package snapshot

import "github.com/kvisser/taskline/internal/task"

// Memory is an in-process snapshot used by tests and anywhere persistence
// should be a no-op across sessions.
type Memory struct {
	tasks []task.Task
	saves int
}

// NewMemory creates an empty in-memory snapshot.
func NewMemory() *Memory {
	return &Memory{}
}

// Save replaces the held collection.
func (m *Memory) Save(tasks []task.Task) error {
	m.tasks = make([]task.Task, len(tasks))
	copy(m.tasks, tasks)
	m.saves++
	return nil
}

// Load returns the held collection.
func (m *Memory) Load() ([]task.Task, error) {
	out := make([]task.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

// Saves reports how many times Save has been called.
func (m *Memory) Saves() int {
	return m.saves
}
