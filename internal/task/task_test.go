//nolint:testpackage // Tests require internal access for thorough testing
package task

import (
	"testing"
	"time"
)

func TestIsValidCategory(t *testing.T) {
	tests := []struct {
		category Category
		valid    bool
	}{
		{CategoryWork, true},
		{CategoryPersonal, true},
		{CategoryShopping, true},
		{CategoryHealth, true},
		{CategoryOther, true},
		{Category("chores"), false},
		{Category(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := IsValidCategory(tt.category); got != tt.valid {
				t.Errorf("IsValidCategory(%q) = %v, want %v", tt.category, got, tt.valid)
			}
		})
	}
}

func TestIsValidPriority(t *testing.T) {
	tests := []struct {
		priority Priority
		valid    bool
	}{
		{PriorityLow, true},
		{PriorityMedium, true},
		{PriorityHigh, true},
		{Priority("urgent"), false},
		{Priority(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := IsValidPriority(tt.priority); got != tt.valid {
				t.Errorf("IsValidPriority(%q) = %v, want %v", tt.priority, got, tt.valid)
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityRank(PriorityHigh) >= PriorityRank(PriorityMedium) {
		t.Error("High should rank before Medium")
	}
	if PriorityRank(PriorityMedium) >= PriorityRank(PriorityLow) {
		t.Error("Medium should rank before Low")
	}
	if PriorityRank(Priority("bogus")) <= PriorityRank(PriorityLow) {
		t.Error("Unknown priority should rank last")
	}
}

func TestNextID(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("derives from timestamp", func(t *testing.T) {
		id := NextID(now, func(int64) bool { return false })
		if id != now.UnixMilli() {
			t.Errorf("NextID = %d, want %d", id, now.UnixMilli())
		}
	})

	t.Run("bumps on collision", func(t *testing.T) {
		taken := map[int64]bool{
			now.UnixMilli():     true,
			now.UnixMilli() + 1: true,
		}
		id := NextID(now, func(id int64) bool { return taken[id] })
		if id != now.UnixMilli()+2 {
			t.Errorf("NextID = %d, want %d", id, now.UnixMilli()+2)
		}
	})
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2024-03-01", false},
		{"padded input", " 2024-03-01 ", false},
		{"with time component", "2024-03-01T10:00:00Z", true},
		{"wrong separator", "2024/03/01", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDueDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && FormatDueDate(got) != "2024-03-01" {
				t.Errorf("round-trip = %q, want %q", FormatDueDate(got), "2024-03-01")
			}
		})
	}
}
