package snapshot

import (
	"io"

	"gopkg.in/yaml.v3"

	tlerrors "github.com/kvisser/taskline/internal/errors"
	"github.com/kvisser/taskline/internal/task"
)

// yamlTask is the YAML-serializable form of a task, used by export/import.
type yamlTask struct {
	ID        int64   `yaml:"id"`
	Text      string  `yaml:"text"`
	Completed bool    `yaml:"completed"`
	Category  string  `yaml:"category"`
	Priority  string  `yaml:"priority"`
	DueDate   *string `yaml:"due_date,omitempty"`
}

// yamlDocument is the top-level export document.
type yamlDocument struct {
	Tasks []yamlTask `yaml:"tasks"`
}

// ExportYAML writes the collection as a YAML document for backup or sharing.
func ExportYAML(w io.Writer, tasks []task.Task) error {
	doc := yamlDocument{Tasks: make([]yamlTask, len(tasks))}
	for i, t := range tasks {
		yt := yamlTask{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Category:  string(t.Category),
			Priority:  string(t.Priority),
		}
		if t.DueDate != nil {
			s := task.FormatDueDate(*t.DueDate)
			yt.DueDate = &s
		}
		doc.Tasks[i] = yt
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// ImportYAML reads a YAML export document back into tasks. Unlike snapshot
// loading, import is user-initiated, so malformed input is an error rather
// than a silent fallback.
func ImportYAML(r io.Reader) ([]task.Task, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	tasks := make([]task.Task, 0, len(doc.Tasks))
	for _, yt := range doc.Tasks {
		c := task.Category(yt.Category)
		if !task.IsValidCategory(c) {
			return nil, tlerrors.InvalidCategoryError{Value: yt.Category}
		}
		p := task.Priority(yt.Priority)
		if !task.IsValidPriority(p) {
			return nil, tlerrors.InvalidPriorityError{Value: yt.Priority}
		}

		t := task.Task{
			ID:        yt.ID,
			Text:      yt.Text,
			Completed: yt.Completed,
			Category:  c,
			Priority:  p,
		}
		if yt.DueDate != nil {
			due, err := task.ParseDueDate(*yt.DueDate)
			if err != nil {
				return nil, tlerrors.InvalidDateError{Value: *yt.DueDate}
			}
			t.DueDate = &due
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
