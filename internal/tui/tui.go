// Package tui implements the interactive terminal frontend.
//
// The TUI is a thin collaborator over the task store: it renders a
// read-only snapshot of the task list plus a selection index, and every
// state change goes through the store's public operations.
package tui

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	internalstrings "github.com/remsh/rem/internal/strings"
	"github.com/remsh/rem/internal/ui"
	"github.com/remsh/rem/task"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

// Model is the bubbletea model for the tracker.
type Model struct {
	store     *task.Store
	editorCmd string

	width  int
	height int

	mode     mode
	input    textinput.Model
	tasks    []task.Task
	selected int
	showDone bool

	preview     string
	status      string
	statusLevel statusLevel
}

// Run starts the interactive session and blocks until the user quits.
func Run(store *task.Store, editorCmd string) error {
	if store == nil {
		return fmt.Errorf("task store is required")
	}
	program := tea.NewProgram(New(store, editorCmd), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// New returns a model backed by the given store.
func New(store *task.Store, editorCmd string) Model {
	input := textinput.New()
	input.Placeholder = "Task name"
	input.CharLimit = task.MaxNameLength
	input.Prompt = "> "

	return Model{
		store:     store,
		editorCmd: editorCmd,
		input:     input,
		selected:  -1,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadTasksCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tasksLoadedMsg:
		return m.handleTasksLoaded(msg), nil
	case editorFinishedMsg:
		return m.handleEditorFinished(msg), nil
	case tea.KeyMsg:
		if m.mode == modeInput {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.mode = modeInput
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink
	case "j", "down":
		m = m.moveSelection(1)
		return m, nil
	case "k", "up":
		m = m.moveSelection(-1)
		return m, nil
	case "n":
		return m.transition(true), nil
	case "N":
		return m.transition(false), nil
	case "d":
		return m.toggleDone(), nil
	case "e":
		return m.openEditor()
	case "r":
		return m, m.loadTasksCmd()
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m = m.addTask()
		return m, nil
	case "esc":
		m.input.Reset()
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// addTask creates a task from the input buffer. An empty buffer just
// leaves input mode without creating anything.
func (m Model) addTask() Model {
	name := m.input.Value()
	m.input.Reset()
	m.mode = modeNormal

	if internalstrings.IsBlank(name) {
		return m
	}

	created, err := m.store.Create(name)
	if err != nil {
		m.setStatus(fmt.Sprintf("Create failed: %v", err), statusError)
		return m
	}

	m.tasks = task.GroupAndSort(append(m.tasks, *created))
	m.selectByID(created.ID)
	m.refreshPreview()
	m.setStatus(fmt.Sprintf("Created %s", created.ID), statusInfo)
	return m
}

// transition moves the selected task forward or backward one status and
// re-sorts the collection, keeping the same task selected.
func (m Model) transition(forward bool) Model {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return m
	}

	t := &m.tasks[m.selected]
	id := t.ID
	var err error
	if forward {
		err = m.store.Forward(t)
	} else {
		err = m.store.Backward(t)
	}
	if err != nil {
		m.setStatus(fmt.Sprintf("Move failed: %v", err), statusError)
		return m
	}

	// A done task stays visible after its transition even when done
	// tasks are hidden, so the move can be undone without toggling.
	m.tasks = task.GroupAndSort(m.tasks)
	m.selectByID(id)
	m.refreshPreview()
	m.clearStatus()
	return m
}

// toggleDone shows or hides done tasks, loading them on demand.
func (m Model) toggleDone() Model {
	if m.showDone {
		m.showDone = false
		var kept []task.Task
		for _, status := range []task.Status{task.StatusTodo, task.StatusDoing} {
			kept = append(kept, task.FilterByStatus(m.tasks, status)...)
		}
		m.tasks = kept
		m.clampSelection()
		m.refreshPreview()
		return m
	}

	done, err := m.store.LoadByStatuses(task.StatusDone)
	if err != nil {
		m.setStatus(fmt.Sprintf("Load done failed: %v", err), statusError)
		return m
	}
	m.showDone = true
	m.tasks = task.GroupAndSort(append(m.tasks, done...))
	m.clampSelection()
	m.refreshPreview()
	return m
}

func (m Model) openEditor() (tea.Model, tea.Cmd) {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return m, nil
	}
	path := m.store.Path(m.tasks[m.selected])
	cmd := exec.Command(m.editorCmd, path)
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m Model) handleEditorFinished(msg editorFinishedMsg) Model {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Editor failed: %v", msg.err), statusError)
		return m
	}
	if m.selected >= 0 && m.selected < len(m.tasks) {
		reloaded, err := m.store.Reload(m.tasks[m.selected])
		if err != nil {
			m.setStatus(fmt.Sprintf("Reload failed: %v", err), statusError)
			return m
		}
		m.tasks[m.selected] = reloaded
	}
	m.refreshPreview()
	m.clearStatus()
	return m
}

func (m Model) handleTasksLoaded(msg tasksLoadedMsg) Model {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Load failed: %v", msg.err), statusError)
		return m
	}
	selectedID := ""
	if m.selected >= 0 && m.selected < len(m.tasks) {
		selectedID = m.tasks[m.selected].ID
	}
	m.tasks = task.GroupAndSort(msg.tasks)
	if selectedID != "" {
		m.selectByID(selectedID)
	}
	m.clampSelection()
	m.refreshPreview()
	return m
}

func (m *Model) moveSelection(delta int) Model {
	if len(m.tasks) == 0 {
		return *m
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.tasks) {
		next = len(m.tasks) - 1
	}
	m.selected = next
	m.refreshPreview()
	return *m
}

func (m *Model) clampSelection() {
	if len(m.tasks) == 0 {
		m.selected = -1
		return
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.tasks) {
		m.selected = len(m.tasks) - 1
	}
}

func (m *Model) selectByID(id string) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.selected = i
			return
		}
	}
	m.clampSelection()
}

func (m *Model) refreshPreview() {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		m.preview = ""
		return
	}
	body, err := m.store.ReadBody(m.tasks[m.selected])
	if err != nil {
		m.preview = ""
		return
	}
	m.preview = body
}

func (m *Model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusLevel = statusNone
}

func (m Model) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		statuses := []task.Status{task.StatusTodo, task.StatusDoing}
		if m.showDone {
			statuses = append(statuses, task.StatusDone)
		}
		tasks, err := m.store.LoadByStatuses(statuses...)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	contentHeight := m.height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}
	leftWidth, rightWidth := splitWidths(m.width)

	listPane := paneActiveStyle.Width(leftWidth - 2).Height(contentHeight).Render(m.renderList(contentHeight))
	detailPane := paneStyle.Width(rightWidth - 2).Height(contentHeight).Render(m.renderDetail(rightWidth - 6))
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	lines := []string{m.renderTitle(), content, m.renderFooter()}
	return strings.Join(lines, "\n")
}

func (m Model) renderTitle() string {
	title := "rem"
	if m.showDone {
		title = "rem (done shown)"
	}
	return titleBarStyle.Width(m.width).Render(title)
}

func (m Model) renderList(height int) string {
	if len(m.tasks) == 0 {
		return valueMuted.Render("No tasks. Press a to add one.")
	}

	lines := make([]string, 0, len(m.tasks))
	for i, t := range m.tasks {
		marker := "  "
		if i == m.selected {
			marker = "> "
		}
		line := marker + statusBadge(t.Status) + " " + t.Name
		switch {
		case i == m.selected:
			line = selectedLineStyle.Render(line)
		case t.Status == task.StatusDone:
			line = doneLineStyle.Render(line)
		}
		lines = append(lines, line)
	}

	// Keep the selection visible when the list outgrows the pane.
	if len(lines) > height && m.selected >= height {
		start := m.selected - height + 1
		lines = lines[start:]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail(width int) string {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return valueMuted.Render("Nothing selected")
	}

	t := m.tasks[m.selected]
	now := task.Now()
	lines := []string{
		labelStyle.Render(t.Name),
		"",
		valueMuted.Render("id      ") + t.ID,
		valueMuted.Render("status  ") + string(t.Status),
		valueMuted.Render("created ") + ui.FormatTimeAgo(t.CreatedAt, now),
		valueMuted.Render("updated ") + ui.FormatTimeAgo(t.UpdatedAt, now),
		"",
		renderBody(m.preview, width),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	if m.mode == modeInput {
		return inputBarStyle.Width(m.width - 2).Render(m.input.View())
	}

	help := helpBarStyle.Render("a add | j/k move | n/N forward/back | d toggle done | e edit | q quit")
	if m.status == "" {
		return help
	}
	style := valueMuted
	if m.statusLevel == statusError {
		style = statusErrorStyle
	} else if m.statusLevel == statusInfo {
		style = statusSuccessStyle
	}
	return help + "\n" + style.Render(m.status)
}

func statusBadge(s task.Status) string {
	badge := "[" + string(s) + "]"
	switch s {
	case task.StatusTodo:
		return badgeTodoStyle.Render(badge)
	case task.StatusDoing:
		return badgeDoingStyle.Render(badge)
	case task.StatusDone:
		return badgeDoneStyle.Render(badge)
	}
	return badge
}

func splitWidths(width int) (int, int) {
	left := width / 2
	if left < 30 {
		left = 30
	}
	if left > width-20 {
		left = width / 2
	}
	right := width - left
	if right < 20 {
		right = 20
		left = width - right
		if left < 0 {
			left = 0
		}
	}
	return left, right
}

type tasksLoadedMsg struct {
	tasks []task.Task
	err   error
}

type editorFinishedMsg struct {
	err error
}
