//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// InvalidCategoryError indicates an invalid category value.
type InvalidCategoryError struct {
	Value string
}

func (e InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category: %s (valid: work, personal, shopping, health, other)", e.Value)
}

// InvalidPriorityError indicates an invalid priority value.
type InvalidPriorityError struct {
	Value string
}

func (e InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %s (valid: low, medium, high)", e.Value)
}

// InvalidDateError indicates a due date that is not a calendar date.
type InvalidDateError struct {
	Value string
}

func (e InvalidDateError) Error() string {
	return fmt.Sprintf("invalid due date: %s (expected YYYY-MM-DD)", e.Value)
}

// InvalidFilterError indicates an invalid status filter value.
type InvalidFilterError struct {
	Value string
}

func (e InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter: %s (valid: all, active, completed)", e.Value)
}

// EmptyTextError indicates task text that trims to nothing. The store treats
// this as a silent no-op; the CLI uses it for user-facing messaging only.
type EmptyTextError struct{}

func (e EmptyTextError) Error() string {
	return "task text is empty"
}

// TaskNotFoundError indicates the id does not match any task.
type TaskNotFoundError struct {
	ID int64
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}
