package task

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	internalstrings "github.com/remsh/rem/internal/strings"
)

// FileExt is the extension used for task files.
const FileExt = ".md"

// Store provides access to the task files under one storage root. It is
// the sole owner of the on-disk layout: a root directory containing one
// subdirectory per status, each holding <id>.md files.
//
// The store assumes exclusive, sequential access to the root. It holds
// no locks and does not defend against concurrent writers.
type Store struct {
	root string
}

// Open returns a store rooted at the given directory. The directory does
// not need to exist yet; status subdirectories are created on first
// write.
func Open(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	return &Store{root: root}, nil
}

// Root returns the storage root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the directory holding files for the given status.
func (s *Store) Dir(status Status) string {
	return filepath.Join(s.root, status.DirName())
}

// Path returns the absolute path of the task's file. The path is fully
// determined by the task's status and ID. It does not check whether the
// file exists.
func (s *Store) Path(t Task) string {
	return filepath.Join(s.Dir(t.Status), t.ID+FileExt)
}

// Save encodes the task and writes its file under the status directory,
// creating the directory if needed. Metadata is overwritten; any body
// already present in the file is preserved. On failure the in-memory
// task is unchanged, so the caller may retry.
func (s *Store) Save(t *Task) error {
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}

	path := s.Path(*t)
	body := ""
	if data, err := os.ReadFile(path); err == nil {
		body = bodyOf(string(data))
	}

	if err := os.MkdirAll(s.Dir(t.Status), 0o755); err != nil {
		return fmt.Errorf("create status dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Encode(*t, body)), 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// Create creates a new task with the given name, persists it under
// todo/, and returns it. The name has runs of whitespace collapsed
// before validation. When the save fails, no task is returned and
// nothing is left on disk.
func (s *Store) Create(name string) (*Task, error) {
	name = internalstrings.NormalizeWhitespace(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	t := New(name)
	if err := s.Save(&t); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	return &t, nil
}

// LoadOne reads and decodes a single task file. The status hint must
// name the directory the path was found under. Returns ErrTaskNotFound
// when the file does not exist and ErrMalformedRecord when it does not
// parse.
func (s *Store) LoadOne(path string, hint Status) (Task, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, path)
	}
	if err != nil {
		return Task{}, fmt.Errorf("read task file: %w", err)
	}

	t, _, err := Decode(data, hint)
	if err != nil {
		return Task{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return t, nil
}

// LoadByStatuses loads every task for the requested statuses, sorted by
// creation time ascending. A missing status directory is treated as
// empty. Files that fail to decode are skipped so that one corrupted
// record never blocks a bulk load.
func (s *Store) LoadByStatuses(statuses ...Status) ([]Task, error) {
	var tasks []Task
	for _, status := range statuses {
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}

		dir := s.Dir(status)
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read status dir %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != FileExt {
				continue
			}
			t, err := s.LoadOne(filepath.Join(dir, entry.Name()), status)
			if err != nil {
				continue
			}
			tasks = append(tasks, t)
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// Reload re-reads the task's file and returns a fresh value. Used after
// the file has been edited externally.
func (s *Store) Reload(t Task) (Task, error) {
	return s.LoadOne(s.Path(t), t.Status)
}

// ReadBody returns the free-form body of the task's file, the portion
// after the metadata block.
func (s *Store) ReadBody(t Task) (string, error) {
	data, err := os.ReadFile(s.Path(t))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, s.Path(t))
	}
	if err != nil {
		return "", fmt.Errorf("read task file: %w", err)
	}

	_, body, err := Decode(data, t.Status)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", s.Path(t), err)
	}
	return body, nil
}

// MoveStatus transitions the task to a new status, renaming its file
// into the new status directory and rewriting it there. The in-memory
// status and updated_at are committed only after the rename succeeds; on
// any failure both memory and disk are left at the old status.
func (s *Store) MoveStatus(t *Task, next Status) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if next == t.Status {
		return nil
	}

	oldPath := s.Path(*t)
	moved := *t
	moved.Status = next
	newPath := s.Path(moved)

	if err := os.MkdirAll(s.Dir(next), 0o755); err != nil {
		return fmt.Errorf("create status dir: %w", err)
	}
	if _, err := os.Stat(oldPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, oldPath)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("move task file: %w", err)
	}

	prevStatus, prevUpdated := t.Status, t.UpdatedAt
	t.Status = next
	t.UpdatedAt = Now()

	// The resave keeps the file's metadata current after the move; the
	// body is preserved by Save.
	if err := s.Save(t); err != nil {
		t.Status, t.UpdatedAt = prevStatus, prevUpdated
		_ = os.Rename(newPath, oldPath)
		return fmt.Errorf("rewrite task file: %w", err)
	}
	return nil
}

// Forward advances the task one status (todo -> doing -> done).
// Advancing from done is a no-op.
func (s *Store) Forward(t *Task) error {
	next, ok := t.Status.Next()
	if !ok {
		return nil
	}
	return s.MoveStatus(t, next)
}

// Backward retreats the task one status (done -> doing -> todo).
// Retreating from todo is a no-op.
func (s *Store) Backward(t *Task) error {
	prev, ok := t.Status.Prev()
	if !ok {
		return nil
	}
	return s.MoveStatus(t, prev)
}
