// Package snapshot persists the task collection as a single serialized
// value. The whole collection is written and read as one unit; there is no
// partial write, versioning, or migration.
package snapshot

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/kvisser/taskline/internal/task"
)

//go:embed schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// Snapshot is the persistence dependency of the task store. Implementations
// must treat absent or corrupt data as an empty collection on Load.
type Snapshot interface {
	Save(tasks []task.Task) error
	Load() ([]task.Task, error)
}

// taskRecord is the JSON-serializable form of a task.
type taskRecord struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Category  string  `json:"category"`
	Priority  string  `json:"priority"`
	DueDate   *string `json:"dueDate,omitempty"`
}

func toRecord(t task.Task) taskRecord {
	r := taskRecord{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Category:  string(t.Category),
		Priority:  string(t.Priority),
	}
	if t.DueDate != nil {
		s := task.FormatDueDate(*t.DueDate)
		r.DueDate = &s
	}
	return r
}

// fromRecord rebuilds a task. A malformed due date degrades to no due date
// rather than rejecting the snapshot.
func fromRecord(r taskRecord) task.Task {
	t := task.Task{
		ID:        r.ID,
		Text:      r.Text,
		Completed: r.Completed,
		Category:  task.Category(r.Category),
		Priority:  task.Priority(r.Priority),
	}
	if r.DueDate != nil {
		if due, err := task.ParseDueDate(*r.DueDate); err == nil {
			t.DueDate = &due
		}
	}
	return t
}

// File stores the snapshot as a single JSON file at a fixed path.
type File struct {
	path   string
	logger *log.Logger
}

// NewFile creates a file-backed snapshot at path.
func NewFile(path string, logger *log.Logger) *File {
	if logger == nil {
		logger = log.Default()
	}
	return &File{path: path, logger: logger}
}

// Path returns the snapshot file path.
func (f *File) Path() string {
	return f.path
}

// Save serializes the full collection and overwrites the snapshot file.
func (f *File) Save(tasks []task.Task) error {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		records[i] = toRecord(t)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0644)
}

// Load reads the snapshot file. An absent file yields an empty collection.
// Content that fails to parse or does not validate against the snapshot
// schema is treated the same way; corruption never propagates as an error.
func (f *File) Load() ([]task.Task, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return parse(data, f.logger), nil
}

// parse decodes and validates snapshot bytes, degrading to empty on any
// structural problem.
func parse(data []byte, logger *log.Logger) []task.Task {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("snapshot is not valid JSON, starting empty", "err", err)
		return nil
	}
	if err := schema.Validate(raw); err != nil {
		logger.Warn("snapshot failed schema validation, starting empty", "err", err)
		return nil
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("snapshot could not be decoded, starting empty", "err", err)
		return nil
	}

	tasks := make([]task.Task, len(records))
	for i, r := range records {
		tasks[i] = fromRecord(r)
	}
	return tasks
}

// DefaultPath returns the snapshot location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "taskline", "tasks.json"), nil
}
