package task

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is returned when a task file's metadata block
	// is missing or does not parse.
	ErrMalformedRecord = errors.New("malformed task record")

	// ErrEmptyName is returned when a task name is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameTooLong is returned when a task name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("name exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrTaskNotFound is returned when a task's file does not exist on disk.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidateName checks if the name is valid.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %d > %d", ErrNameTooLong, len(name), MaxNameLength)
	}
	return nil
}
