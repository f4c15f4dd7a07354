// Package view derives an ordered, filtered task list for display.
// Everything here is pure: no mutation, no side effects.
package view

import (
	"sort"
	"strings"

	"github.com/kvisser/taskline/internal/task"
)

// Filter is the three-way status selector applied independently of search.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// IsValidFilter checks if a filter string is valid.
func IsValidFilter(f Filter) bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

// Matches returns true if the task should be included.
func (f Filter) Matches(t task.Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// View filters tasks by search term and status, then orders them. The input
// slice is never modified.
//
// Search is a case-insensitive substring match; an empty term matches all.
// Ordering is by priority rank ascending, then by due date ascending when
// both tasks carry one. When either side lacks a due date the comparator
// reports equal, so the stable sort keeps their relative insertion order.
func View(tasks []task.Task, searchTerm string, filter Filter) []task.Task {
	term := strings.ToLower(searchTerm)

	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if term != "" && !strings.Contains(strings.ToLower(t.Text), term) {
			continue
		}
		if !filter.Matches(t) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func less(a, b task.Task) bool {
	ra, rb := task.PriorityRank(a.Priority), task.PriorityRank(b.Priority)
	if ra != rb {
		return ra < rb
	}
	if a.DueDate == nil || b.DueDate == nil {
		return false
	}
	return a.DueDate.Before(*b.DueDate)
}
