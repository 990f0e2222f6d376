package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	internalstrings "github.com/remsh/rem/internal/strings"
)

// renderBody renders a task body as markdown for the detail pane,
// falling back to plain word-wrapped text when markdown rendering fails.
func renderBody(body string, width int) string {
	if internalstrings.IsBlank(body) {
		return valueMuted.Render("(no notes)")
	}
	if width < 1 {
		width = 1
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wordwrap.String(body, width)
	}

	rendered, err := renderer.Render(body)
	if err != nil {
		return wordwrap.String(body, width)
	}
	return internalstrings.TrimTrailingWhitespace(rendered)
}
