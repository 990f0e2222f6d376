package tui

import "github.com/charmbracelet/lipgloss"

var (
	borderASCII = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	titleBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true).Padding(0, 1)

	paneStyle       = lipgloss.NewStyle().Border(borderASCII).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	paneActiveStyle = paneStyle.BorderForeground(lipgloss.Color("33"))

	selectedLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true)
	doneLineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	badgeTodoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	badgeDoingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	badgeDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	labelStyle         = lipgloss.NewStyle().Bold(true)
	valueMuted         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	helpBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	inputBarStyle = lipgloss.NewStyle().Border(borderASCII).Padding(0, 1)
)
