// Package store owns the canonical in-memory task collection. All mutation
// goes through the Store, and every successful mutation writes the full
// snapshot before returning.
package store

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kvisser/taskline/internal/snapshot"
	"github.com/kvisser/taskline/internal/task"
)

// Store mediates all access to the task collection. The persistence
// dependency is injected so tests can use an in-memory snapshot.
type Store struct {
	snap   snapshot.Snapshot
	logger *log.Logger
	tasks  []task.Task
}

// New creates a Store backed by the given snapshot.
func New(snap snapshot.Snapshot, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{snap: snap, logger: logger}
}

// Load replaces the collection from the persisted snapshot. An absent or
// corrupt snapshot degrades to an empty collection inside the adapter; only
// real I/O failures surface here.
func (s *Store) Load() error {
	tasks, err := s.snap.Load()
	if err != nil {
		return err
	}
	s.tasks = tasks
	s.logger.Debug("loaded snapshot", "tasks", len(tasks))
	return nil
}

// Create appends a new task with a fresh unique id. Text that trims to
// empty is a silent no-op returning a nil task. The error reports snapshot
// write failures only.
func (s *Store) Create(text string, category task.Category, priority task.Priority, dueDate *time.Time) (*task.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	t := task.Task{
		ID:       task.NextID(time.Now(), s.exists),
		Text:     text,
		Category: category,
		Priority: priority,
		DueDate:  dueDate,
	}
	s.tasks = append(s.tasks, t)

	if err := s.persist(); err != nil {
		return nil, err
	}
	s.logger.Debug("created task", "id", t.ID, "priority", t.Priority, "category", t.Category)
	return &t, nil
}

// Toggle flips the completed flag of the task with id. A missing id is a
// silent no-op returning a nil task. The returned task reflects the new
// state so callers can observe the false-to-true transition themselves.
func (s *Store) Toggle(id int64) (*task.Task, error) {
	var toggled *task.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			t := s.tasks[i]
			toggled = &t
			break
		}
	}

	if err := s.persist(); err != nil {
		return nil, err
	}
	if toggled != nil {
		s.logger.Debug("toggled task", "id", id, "completed", toggled.Completed)
	}
	return toggled, nil
}

// Delete removes the task with id permanently. A missing id is a silent
// no-op; the bool reports whether a task was removed.
func (s *Store) Delete(id int64) (bool, error) {
	removed := false
	out := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID == id {
			removed = true
			continue
		}
		out = append(out, t)
	}
	s.tasks = out

	if err := s.persist(); err != nil {
		return false, err
	}
	if removed {
		s.logger.Debug("deleted task", "id", id)
	}
	return removed, nil
}

// ClearCompleted removes every completed task in one mutation and persists
// once. Returns the number of tasks removed.
func (s *Store) ClearCompleted() (int, error) {
	out := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		out = append(out, t)
	}
	s.tasks = out

	if err := s.persist(); err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Debug("cleared completed tasks", "removed", removed)
	}
	return removed, nil
}

// Add inserts an already-built task, reassigning its id on collision. Used
// by import; normal creation goes through Create.
func (s *Store) Add(t task.Task) (*task.Task, error) {
	if t.ID == 0 || s.exists(t.ID) {
		t.ID = task.NextID(time.Now(), s.exists)
	}
	s.tasks = append(s.tasks, t)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return &t, nil
}

// All returns the collection in insertion order. The slice is a copy;
// callers cannot mutate the store through it.
func (s *Store) All() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with id, or nil if absent.
func (s *Store) Get(id int64) *task.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

func (s *Store) exists(id int64) bool {
	for _, t := range s.tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) persist() error {
	return s.snap.Save(s.tasks)
}
