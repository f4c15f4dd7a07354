//nolint:testpackage // Tests require internal access for thorough testing
package store

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/kvisser/taskline/internal/snapshot"
	"github.com/kvisser/taskline/internal/task"
)

func newTestStore() (*Store, *snapshot.Memory) {
	snap := snapshot.NewMemory()
	return New(snap, log.New(io.Discard)), snap
}

func TestCreate(t *testing.T) {
	s, snap := newTestStore()

	tk, err := s.Create("Buy milk", task.CategoryShopping, task.PriorityHigh, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if tk == nil {
		t.Fatal("Create returned nil task")
	}
	if tk.ID == 0 {
		t.Error("Task ID should not be zero")
	}
	if tk.Completed {
		t.Error("New task should not be completed")
	}
	if len(s.All()) != 1 {
		t.Errorf("Collection length = %d, want 1", len(s.All()))
	}
	if snap.Saves() != 1 {
		t.Errorf("Saves = %d, want 1", snap.Saves())
	}
}

func TestCreateTrimsText(t *testing.T) {
	s, _ := newTestStore()

	tk, err := s.Create("  walk the dog  ", task.CategoryOther, task.PriorityMedium, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if tk.Text != "walk the dog" {
		t.Errorf("Text = %q, want %q", tk.Text, "walk the dog")
	}
}

func TestCreateEmptyTextIsNoOp(t *testing.T) {
	s, snap := newTestStore()

	for _, text := range []string{"", "   ", "\t\n"} {
		tk, err := s.Create(text, task.CategoryOther, task.PriorityMedium, nil)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", text, err)
		}
		if tk != nil {
			t.Errorf("Create(%q) returned a task, want nil", text)
		}
	}
	if len(s.All()) != 0 {
		t.Errorf("Collection length = %d, want 0", len(s.All()))
	}
	if snap.Saves() != 0 {
		t.Errorf("Rejected creates should not persist, Saves = %d", snap.Saves())
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	s, _ := newTestStore()

	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		tk, err := s.Create("task", task.CategoryOther, task.PriorityMedium, nil)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if seen[tk.ID] {
			t.Fatalf("Duplicate ID %d", tk.ID)
		}
		seen[tk.ID] = true
	}
}

func TestToggleInvolution(t *testing.T) {
	s, _ := newTestStore()

	tk, _ := s.Create("stretch", task.CategoryHealth, task.PriorityLow, nil)

	first, err := s.Toggle(tk.ID)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !first.Completed {
		t.Error("First toggle should complete the task")
	}

	second, err := s.Toggle(tk.ID)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if second.Completed {
		t.Error("Second toggle should restore the original state")
	}
}

func TestToggleMissingIDIsNoOp(t *testing.T) {
	s, _ := newTestStore()

	s.Create("a", task.CategoryOther, task.PriorityMedium, nil)
	before := s.All()

	tk, err := s.Toggle(99)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if tk != nil {
		t.Error("Toggle of missing id should return nil")
	}

	after := s.All()
	if len(after) != len(before) || after[0] != before[0] {
		t.Error("Toggle of missing id changed the collection")
	}
}

func TestDeleteThenToggleIsNoOp(t *testing.T) {
	s, _ := newTestStore()

	tk, _ := s.Create("doomed", task.CategoryWork, task.PriorityHigh, nil)
	s.Create("survivor", task.CategoryWork, task.PriorityHigh, nil)

	removed, err := s.Delete(tk.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !removed {
		t.Fatal("Delete should report removal")
	}

	before := s.All()
	toggled, err := s.Toggle(tk.ID)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if toggled != nil {
		t.Error("Toggle after Delete should be a no-op")
	}
	after := s.All()
	if len(after) != len(before) {
		t.Errorf("Collection length changed: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if after[i] != before[i] {
			t.Error("Toggle after Delete changed the collection")
		}
	}
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	s, _ := newTestStore()

	s.Create("keep", task.CategoryOther, task.PriorityMedium, nil)

	removed, err := s.Delete(12345)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed {
		t.Error("Delete of missing id should report false")
	}
	if len(s.All()) != 1 {
		t.Errorf("Collection length = %d, want 1", len(s.All()))
	}
}

func TestClearCompleted(t *testing.T) {
	s, _ := newTestStore()

	a, _ := s.Create("done one", task.CategoryOther, task.PriorityMedium, nil)
	s.Create("still open", task.CategoryOther, task.PriorityMedium, nil)
	b, _ := s.Create("done two", task.CategoryOther, task.PriorityMedium, nil)
	s.Toggle(a.ID)
	s.Toggle(b.ID)

	removed, err := s.ClearCompleted()
	if err != nil {
		t.Fatalf("ClearCompleted failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("ClearCompleted removed %d, want 2", removed)
	}

	remaining := s.All()
	if len(remaining) != 1 {
		t.Fatalf("Collection length = %d, want 1", len(remaining))
	}
	if remaining[0].Text != "still open" {
		t.Errorf("Remaining task = %q, want %q", remaining[0].Text, "still open")
	}
}

func TestMutationsPersistSynchronously(t *testing.T) {
	s, snap := newTestStore()

	tk, _ := s.Create("a", task.CategoryOther, task.PriorityMedium, nil)
	s.Toggle(tk.ID)
	s.Delete(tk.ID)

	// One full write per mutation, no batching.
	if snap.Saves() != 3 {
		t.Errorf("Saves = %d, want 3", snap.Saves())
	}
}

func TestLoadRoundTrip(t *testing.T) {
	snap := snapshot.NewMemory()
	s := New(snap, log.New(io.Discard))

	due, _ := task.ParseDueDate("2024-06-15")
	s.Create("first", task.CategoryWork, task.PriorityHigh, &due)
	s.Create("second", task.CategoryHealth, task.PriorityLow, nil)
	saved := s.All()

	reloaded := New(snap, log.New(io.Discard))
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := reloaded.All()
	if len(got) != len(saved) {
		t.Fatalf("Loaded %d tasks, want %d", len(got), len(saved))
	}
	for i := range got {
		if got[i].ID != saved[i].ID || got[i].Text != saved[i].Text ||
			got[i].Completed != saved[i].Completed ||
			got[i].Category != saved[i].Category || got[i].Priority != saved[i].Priority {
			t.Errorf("Task %d = %+v, want %+v", i, got[i], saved[i])
		}
	}
	if got[0].DueDate == nil || !got[0].DueDate.Equal(due) {
		t.Error("Due date did not survive the round trip")
	}
	if got[1].DueDate != nil {
		t.Error("Absent due date should stay absent")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s, _ := newTestStore()

	s.Create("original", task.CategoryOther, task.PriorityMedium, nil)
	view := s.All()
	view[0].Text = "mutated"

	if s.All()[0].Text != "original" {
		t.Error("All should return a defensive copy")
	}
}

func TestAddReassignsCollidingID(t *testing.T) {
	s, _ := newTestStore()

	tk, _ := s.Create("existing", task.CategoryOther, task.PriorityMedium, nil)

	added, err := s.Add(task.Task{ID: tk.ID, Text: "imported", Category: task.CategoryOther, Priority: task.PriorityMedium})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.ID == tk.ID {
		t.Error("Add should reassign a colliding id")
	}
	if len(s.All()) != 2 {
		t.Errorf("Collection length = %d, want 2", len(s.All()))
	}
}
