package editor

import "testing"

func TestCommand(t *testing.T) {
	t.Setenv("EDITOR", "")
	if got := Command(""); got != "vi" {
		t.Errorf("Command(\"\") = %q, want vi", got)
	}

	t.Setenv("EDITOR", "nano")
	if got := Command(""); got != "nano" {
		t.Errorf("Command(\"\") = %q, want nano", got)
	}
	if got := Command("emacs"); got != "emacs" {
		t.Errorf("Command(\"emacs\") = %q, want override", got)
	}
}
