package task

import "testing"

func TestStatusIsValid(t *testing.T) {
	for _, status := range ValidStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}

	invalid := []Status{"", "open", "DONE", "in_progress"}
	for _, status := range invalid {
		if status.IsValid() {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}

func TestStatusDirName(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusTodo, "todo"},
		{StatusDoing, "doing"},
		{StatusDone, "done"},
		{Status("bogus"), ""},
	}

	for _, tt := range tests {
		if got := tt.status.DirName(); got != tt.want {
			t.Errorf("DirName(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusNext(t *testing.T) {
	tests := []struct {
		status Status
		want   Status
		ok     bool
	}{
		{StatusTodo, StatusDoing, true},
		{StatusDoing, StatusDone, true},
		{StatusDone, StatusDone, false},
	}

	for _, tt := range tests {
		got, ok := tt.status.Next()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Next(%q) = %q, %v, want %q, %v", tt.status, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStatusPrev(t *testing.T) {
	tests := []struct {
		status Status
		want   Status
		ok     bool
	}{
		{StatusDone, StatusDoing, true},
		{StatusDoing, StatusTodo, true},
		{StatusTodo, StatusTodo, false},
	}

	for _, tt := range tests {
		got, ok := tt.status.Prev()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Prev(%q) = %q, %v, want %q, %v", tt.status, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStatusRankOrder(t *testing.T) {
	if !(StatusTodo.Rank() < StatusDoing.Rank() && StatusDoing.Rank() < StatusDone.Rank()) {
		t.Errorf("status ranks out of order: %d %d %d", StatusTodo.Rank(), StatusDoing.Rank(), StatusDone.Rank())
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("buy milk"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateName(""); err != ErrEmptyName {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}

	long := make([]byte, MaxNameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateName(string(long)); err == nil {
		t.Error("expected error for overlong name")
	}
}
