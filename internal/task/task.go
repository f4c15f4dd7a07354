package task

import (
	"strings"
	"time"
)

// Category groups tasks by area of life.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PriorityRank returns the sort order for a priority (lower = more urgent).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Task is a single to-do item. Everything except Completed is set at
// creation and never edited in place; removal is the only other mutation.
type Task struct {
	ID        int64
	Text      string
	Completed bool
	Category  Category
	Priority  Priority
	DueDate   *time.Time
}

// IsValidCategory checks if a category string is valid.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryShopping, CategoryHealth, CategoryOther:
		return true
	default:
		return false
	}
}

// IsValidPriority checks if a priority string is valid.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// DueDateLayout is the canonical textual encoding for due dates.
// Day granularity only; no time component.
const DueDateLayout = "2006-01-02"

// ParseDueDate parses a due date in the canonical layout.
func ParseDueDate(s string) (time.Time, error) {
	return time.ParseInLocation(DueDateLayout, strings.TrimSpace(s), time.UTC)
}

// FormatDueDate renders a due date in the canonical layout.
func FormatDueDate(t time.Time) string {
	return t.Format(DueDateLayout)
}
