// Package task implements a file-backed personal task tracker.
//
// Each task is stored as one markdown file whose frontmatter carries the
// task's metadata. The directory holding the file doubles as the task's
// status: a task in <root>/doing/ is in progress. Moving a task between
// statuses renames its file between directories.
//
// The public API mirrors the tracker's operations:
//   - Create, Save, Forward, Backward for the task lifecycle
//   - LoadByStatuses, LoadOne, Reload for reading
//   - GroupAndSort for the canonical display order
package task

// Status represents the lifecycle state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusDoing indicates the task is currently being worked on.
	StatusDoing Status = "doing"

	// StatusDone indicates the task has been completed.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values in display order.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusDoing, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// DirName returns the storage subdirectory for the status. This mapping
// is the single source of truth correlating statuses with the
// filesystem; nothing else may hard-code directory names.
func (s Status) DirName() string {
	switch s {
	case StatusTodo:
		return "todo"
	case StatusDoing:
		return "doing"
	case StatusDone:
		return "done"
	}
	return ""
}

// Rank returns the sort rank for a status in display order.
func (s Status) Rank() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusDoing:
		return 1
	case StatusDone:
		return 2
	default:
		return 3
	}
}

// Next returns the status after s in the forward direction. The second
// return value is false when s is already at the end of the lifecycle.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusTodo:
		return StatusDoing, true
	case StatusDoing:
		return StatusDone, true
	default:
		return s, false
	}
}

// Prev returns the status before s in the backward direction. The second
// return value is false when s is already at the start of the lifecycle.
func (s Status) Prev() (Status, bool) {
	switch s {
	case StatusDone:
		return StatusDoing, true
	case StatusDoing:
		return StatusTodo, true
	default:
		return s, false
	}
}

// MaxNameLength is the maximum allowed length for a task name.
const MaxNameLength = 500
