package valueobject

import "testing"

func TestNewTaskID(t *testing.T) {
	id, err := NewTaskID(7, "fix-login")
	if err != nil {
		t.Fatalf("NewTaskID: %v", err)
	}
	if got := id.ShortID(); got != "TASK-7" {
		t.Errorf("ShortID() = %q, want TASK-7", got)
	}
	if got := id.String(); got != "TASK-7-fix-login" {
		t.Errorf("String() = %q, want TASK-7-fix-login", got)
	}
	if got := id.Number(); got != 7 {
		t.Errorf("Number() = %d, want 7", got)
	}

	if _, err := NewTaskID(0, "zero"); err == nil {
		t.Error("expected an error for a non-positive task number")
	}
}

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		input    string
		wantFull string
		wantErr  bool
	}{
		{"TASK-7", "TASK-7", false},
		{"TASK-7-fix-login", "TASK-7-fix-login", false},
		{"task-12-multi-word-slug", "TASK-12-multi-word-slug", false},
		{"  TASK-3  ", "TASK-3", false},
		{"TASK-0", "", true},
		{"7-TASK", "", true},
		{"not an id", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := ParseTaskID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTaskID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := id.String(); got != tt.wantFull {
				t.Errorf("ParseTaskID(%q).String() = %q, want %q", tt.input, got, tt.wantFull)
			}
		})
	}
}

func TestTaskIDEquals(t *testing.T) {
	a, _ := NewTaskID(4, "one-slug")
	b, _ := NewTaskID(4, "another-slug")
	c, _ := NewTaskID(5, "one-slug")

	if !a.Equals(b) {
		t.Error("expected IDs with the same number to be equal regardless of slug")
	}
	if a.Equals(c) {
		t.Error("expected IDs with different numbers to differ")
	}
	if a.Equals(nil) {
		t.Error("expected comparison with nil to be false")
	}
}
