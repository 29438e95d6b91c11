package valueobject

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"todo", StatusTodo, false},
		{"To-Do", StatusTodo, false},
		{"in-progress", StatusInProgress, false},
		{"In Progress", StatusInProgress, false},
		{"in_progress", StatusInProgress, false},
		{"doing", StatusInProgress, false},
		{"done", StatusDone, false},
		{"completed", StatusDone, false},
		{"", StatusNone, false},
		{"blocked", StatusNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatusDisplay(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusTodo, "Todo"},
		{StatusInProgress, "In Progress"},
		{StatusDone, "Done"},
		{StatusNone, "None"},
	}

	for _, tt := range tests {
		if got := tt.status.Display(); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
