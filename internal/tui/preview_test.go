package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRenderBodyBlank(t *testing.T) {
	restore := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(restore) })

	for _, body := range []string{"", "   ", "\n\n"} {
		got := renderBody(body, 40)
		if !strings.Contains(got, "(no notes)") {
			t.Errorf("renderBody(%q) = %q, want placeholder", body, got)
		}
	}
}

func TestRenderBodyMarkdown(t *testing.T) {
	got := renderBody("remember the **oat** milk", 40)
	if !strings.Contains(got, "oat") {
		t.Errorf("rendered body missing content: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("trailing whitespace not trimmed: %q", got)
	}
}
