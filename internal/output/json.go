package output

import (
	"encoding/json"

	"github.com/kvisser/taskline/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// taskJSON is the JSON representation of a task. It mirrors the snapshot
// record layout so scripted consumers see one shape everywhere.
type taskJSON struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Category  string  `json:"category"`
	Priority  string  `json:"priority"`
	DueDate   *string `json:"dueDate,omitempty"`
}

func toTaskJSON(t *task.Task) taskJSON {
	tj := taskJSON{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Category:  string(t.Category),
		Priority:  string(t.Priority),
	}
	if t.DueDate != nil {
		s := task.FormatDueDate(*t.DueDate)
		tj.DueDate = &s
	}
	return tj
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t *task.Task) string {
	return marshalJSON(toTaskJSON(t))
}

// FormatTaskList formats a list of tasks as JSON.
func (f *JSONFormatter) FormatTaskList(tasks []task.Task) string {
	jsonTasks := make([]taskJSON, len(tasks))
	for i := range tasks {
		jsonTasks[i] = toTaskJSON(&tasks[i])
	}
	return marshalJSON(jsonTasks)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
