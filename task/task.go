package task

import "time"

// Task represents a single tracked task.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, derived from the
	// initial name + creation timestamp). Immutable after creation.
	ID string

	// Name is the short user-supplied label for the task (max 500 chars).
	Name string

	// Status is the current lifecycle state. It determines which
	// directory holds the task's file and is never written into the
	// file itself.
	Status Status

	// CreatedAt is when the task was created (UTC).
	CreatedAt time.Time

	// UpdatedAt is when the task's status last changed (UTC).
	UpdatedAt time.Time
}

// New creates an in-memory task with status todo. The caller is expected
// to persist it with Store.Save; Store.Create does both.
//
// The ID hashes the untruncated creation instant, so tasks with the same
// name created within the same second still get distinct IDs even though
// the stored timestamps only keep second precision.
func New(name string) Task {
	instant := time.Now().UTC()
	created := instant.Truncate(time.Second)
	return Task{
		ID:        GenerateID(name, instant),
		Name:      name,
		Status:    StatusTodo,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// Now returns the current time in UTC truncated to the precision the
// file encoding preserves.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
