package task

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testTask() Task {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return Task{
		ID:        "abc12345",
		Name:      "buy milk",
		Status:    StatusTodo,
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := testTask()

	decoded, body, err := Decode([]byte(Encode(original, "")), original.Status)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.ID != original.ID {
		t.Errorf("ID = %q, want %q", decoded.ID, original.ID)
	}
	if decoded.Name != original.Name {
		t.Errorf("Name = %q, want %q", decoded.Name, original.Name)
	}
	if decoded.Status != original.Status {
		t.Errorf("Status = %q, want %q", decoded.Status, original.Status)
	}
	if !decoded.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", decoded.CreatedAt, original.CreatedAt)
	}
	if !decoded.UpdatedAt.Equal(original.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", decoded.UpdatedAt, original.UpdatedAt)
	}
	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestEncodeDecodeRoundTripWithBody(t *testing.T) {
	original := testTask()
	bodyText := "# Notes\n\nremember the oat milk\n"

	decoded, body, err := Decode([]byte(Encode(original, bodyText)), StatusDoing)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if body != bodyText {
		t.Errorf("body = %q, want %q", body, bodyText)
	}
	if decoded.Status != StatusDoing {
		t.Errorf("Status = %q, want hint %q", decoded.Status, StatusDoing)
	}
}

func TestEncodeExcludesStatus(t *testing.T) {
	content := Encode(testTask(), "")
	if strings.Contains(content, "status") {
		t.Errorf("encoded content should not mention status:\n%s", content)
	}
}

func TestDecodeStatusComesFromHint(t *testing.T) {
	// The hint wins even if someone writes a status line into the
	// metadata block by hand.
	content := "---\n" +
		"id: abc12345\n" +
		"name: buy milk\n" +
		"status: done\n" +
		"created_at: 2026-03-14T09:30:00Z\n" +
		"updated_at: 2026-03-14T09:30:00Z\n" +
		"---\n"

	decoded, _, err := Decode([]byte(content), StatusDoing)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Status != StatusDoing {
		t.Errorf("Status = %q, want %q", decoded.Status, StatusDoing)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no metadata block", "just some text\n"},
		{"unterminated block", "---\nid: abc12345\n"},
		{"missing id", "---\nname: x\ncreated_at: 2026-03-14T09:30:00Z\nupdated_at: 2026-03-14T09:30:00Z\n---\n"},
		{"missing name", "---\nid: abc12345\ncreated_at: 2026-03-14T09:30:00Z\nupdated_at: 2026-03-14T09:30:00Z\n---\n"},
		{"missing created_at", "---\nid: abc12345\nname: x\nupdated_at: 2026-03-14T09:30:00Z\n---\n"},
		{"bad timestamp", "---\nid: abc12345\nname: x\ncreated_at: yesterday\nupdated_at: 2026-03-14T09:30:00Z\n---\n"},
		{"bad metadata line", "---\nid: abc12345\nname: x\nnot a key value line\ncreated_at: 2026-03-14T09:30:00Z\nupdated_at: 2026-03-14T09:30:00Z\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode([]byte(tt.content), StatusTodo)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("expected ErrMalformedRecord, got %v", err)
			}
		})
	}
}

func TestDecodeInvalidHint(t *testing.T) {
	_, _, err := Decode([]byte(Encode(testTask(), "")), Status("bogus"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestDecodeNameWithColon(t *testing.T) {
	content := "---\n" +
		"id: abc12345\n" +
		"name: errand: buy milk\n" +
		"created_at: 2026-03-14T09:30:00Z\n" +
		"updated_at: 2026-03-14T09:30:00Z\n" +
		"---\n"

	decoded, _, err := Decode([]byte(content), StatusTodo)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Name != "errand: buy milk" {
		t.Errorf("Name = %q, want %q", decoded.Name, "errand: buy milk")
	}
}

func TestDecodeNormalizesCRLF(t *testing.T) {
	content := strings.ReplaceAll(Encode(testTask(), "line one\nline two\n"), "\n", "\r\n")

	decoded, body, err := Decode([]byte(content), StatusTodo)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID != "abc12345" {
		t.Errorf("ID = %q", decoded.ID)
	}
	if body != "line one\nline two\n" {
		t.Errorf("body = %q", body)
	}
}

func TestBodyOf(t *testing.T) {
	if got := bodyOf("no fences here"); got != "" {
		t.Errorf("bodyOf = %q, want empty", got)
	}
	if got := bodyOf("---\nbroken: metadata\n---\nthe body\n"); got != "the body\n" {
		t.Errorf("bodyOf = %q, want %q", got, "the body\n")
	}
}
