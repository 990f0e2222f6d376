package task

import (
	"fmt"
	"strings"
	"time"

	internalstrings "github.com/remsh/rem/internal/strings"
)

// fence delimits the metadata block at the top of a task file.
const fence = "---"

// timeLayout is the timestamp encoding used in the metadata block.
// Timestamps are always UTC with second precision.
const timeLayout = time.RFC3339

// Encode renders a task and its body as task file content. The metadata
// block carries id, name, and timestamps; status is deliberately
// excluded, since it is derivable from the directory the file lives in.
func Encode(t Task, body string) string {
	var b strings.Builder
	b.WriteString(fence + "\n")
	fmt.Fprintf(&b, "id: %s\n", t.ID)
	fmt.Fprintf(&b, "name: %s\n", t.Name)
	fmt.Fprintf(&b, "created_at: %s\n", t.CreatedAt.UTC().Format(timeLayout))
	fmt.Fprintf(&b, "updated_at: %s\n", t.UpdatedAt.UTC().Format(timeLayout))
	b.WriteString(fence + "\n")
	b.WriteString(body)
	return b.String()
}

// Decode parses task file content into a task and its body. The status
// comes from the caller's hint (derived from the directory the content
// was read from), never from the document itself. Returns
// ErrMalformedRecord when the metadata block is absent or its fields do
// not parse.
func Decode(data []byte, hint Status) (Task, string, error) {
	if !hint.IsValid() {
		return Task{}, "", fmt.Errorf("%w: %q", ErrInvalidStatus, hint)
	}

	meta, body, ok := splitContent(internalstrings.NormalizeNewlines(string(data)))
	if !ok {
		return Task{}, "", fmt.Errorf("%w: missing metadata block", ErrMalformedRecord)
	}

	t, err := parseMetadata(meta)
	if err != nil {
		return Task{}, "", err
	}
	t.Status = hint

	return t, body, nil
}

// splitContent separates task file content into the metadata block and
// the body. ok is false when the fences are absent or unterminated.
func splitContent(content string) (meta, body string, ok bool) {
	if !strings.HasPrefix(content, fence+"\n") {
		return "", "", false
	}

	rest := content[len(fence)+1:]
	endIdx := strings.Index(rest, "\n"+fence)
	if endIdx == -1 {
		return "", "", false
	}

	meta = rest[:endIdx]
	bodyStart := endIdx + 1 + len(fence)
	if bodyStart < len(rest) {
		body = rest[bodyStart:]
		// Skip the newline that ends the closing fence line.
		body = strings.TrimPrefix(body, "\n")
	}
	return meta, body, true
}

// bodyOf returns the body portion of task file content, tolerating
// malformed metadata. Used to preserve external edits when a file is
// rewritten.
func bodyOf(content string) string {
	_, body, ok := splitContent(internalstrings.NormalizeNewlines(content))
	if !ok {
		return ""
	}
	return body
}

// parseMetadata parses the key-value lines between the fences.
func parseMetadata(data string) (Task, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return Task{}, fmt.Errorf("%w: bad metadata line %q", ErrMalformedRecord, line)
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	var t Task

	t.ID = fields["id"]
	if t.ID == "" {
		return Task{}, fmt.Errorf("%w: missing id", ErrMalformedRecord)
	}

	t.Name = fields["name"]
	if err := ValidateName(t.Name); err != nil {
		return Task{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	createdAt, err := parseTime(fields, "created_at")
	if err != nil {
		return Task{}, err
	}
	t.CreatedAt = createdAt

	updatedAt, err := parseTime(fields, "updated_at")
	if err != nil {
		return Task{}, err
	}
	t.UpdatedAt = updatedAt

	return t, nil
}

func parseTime(fields map[string]string, key string) (time.Time, error) {
	value, ok := fields[key]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: missing %s", ErrMalformedRecord, key)
	}
	parsed, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad %s %q", ErrMalformedRecord, key, value)
	}
	return parsed.UTC(), nil
}
