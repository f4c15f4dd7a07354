package output

import (
	"fmt"
	"strings"

	"github.com/kvisser/taskline/internal/task"
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(t *task.Task) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%d] %s\n", t.ID, t.Text))
	sb.WriteString(fmt.Sprintf("  Status:   %s\n", f.statusWord(t.Completed)))
	sb.WriteString(fmt.Sprintf("  Category: %s\n", t.Category))
	sb.WriteString(fmt.Sprintf("  Priority: %s\n", t.Priority))
	if t.DueDate != nil {
		sb.WriteString(fmt.Sprintf("  Due:      %s\n", task.FormatDueDate(*t.DueDate)))
	}

	return sb.String()
}

// FormatTaskList formats a list of tasks as compact one-liners.
func (f *HumanFormatter) FormatTaskList(tasks []task.Task) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for i := range tasks {
		sb.WriteString(f.formatTaskLine(&tasks[i]))
	}
	return sb.String()
}

func (f *HumanFormatter) formatTaskLine(t *task.Task) string {
	due := ""
	if t.DueDate != nil {
		due = fmt.Sprintf(" (due %s)", task.FormatDueDate(*t.DueDate))
	}
	return fmt.Sprintf("%s %s [%d] %s #%s%s\n",
		f.statusIcon(t.Completed), f.priorityMark(t.Priority), t.ID, t.Text, t.Category, due)
}

func (f *HumanFormatter) statusIcon(completed bool) string {
	if completed {
		return "[X]"
	}
	return "[ ]"
}

func (f *HumanFormatter) statusWord(completed bool) string {
	if completed {
		return "completed"
	}
	return "active"
}

func (f *HumanFormatter) priorityMark(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "P1"
	case task.PriorityMedium:
		return "P2"
	case task.PriorityLow:
		return "P3"
	default:
		return "P?"
	}
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
