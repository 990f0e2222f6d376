package task

import (
	"time"

	"github.com/remsh/rem/internal/ids"
)

// GenerateID creates a unique 8-character alphanumeric ID from a name and
// timestamp. The ID is derived from a SHA-256 hash of the name
// concatenated with the nanosecond-precision timestamp, so two tasks with
// the same name still get distinct IDs.
func GenerateID(name string, timestamp time.Time) string {
	return ids.GenerateWithTimestamp(name, timestamp, ids.DefaultLength)
}
