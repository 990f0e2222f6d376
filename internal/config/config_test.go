package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadNoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Root != "" || cfg.Editor.Command != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "rem", "config.toml"), `
[storage]
root = "/srv/tasks"

[editor]
command = "nano"
`)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Root != "/srv/tasks" {
		t.Errorf("Storage.Root = %q", cfg.Storage.Root)
	}
	if cfg.Editor.Command != "nano" {
		t.Errorf("Editor.Command = %q", cfg.Editor.Command)
	}
}

func TestLocalOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "rem", "config.toml"), `
[storage]
root = "/srv/tasks"

[editor]
command = "nano"
`)

	workDir := t.TempDir()
	writeFile(t, filepath.Join(workDir, "rem.toml"), `
[storage]
root = "/srv/other"
`)

	cfg, err := Load(workDir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Root != "/srv/other" {
		t.Errorf("Storage.Root = %q, want local override", cfg.Storage.Root)
	}
	// Undefined local keys fall back to the global value.
	if cfg.Editor.Command != "nano" {
		t.Errorf("Editor.Command = %q, want global value", cfg.Editor.Command)
	}
}

func TestLoadBadTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "rem", "config.toml"), "not [valid")

	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected parse error")
	}
}

func TestTasksRoot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{}
	root, err := cfg.TasksRoot()
	if err != nil {
		t.Fatalf("tasks root: %v", err)
	}
	expected := filepath.Join(home, ".local", "share", "rem", "tasks")
	if root != expected {
		t.Errorf("root = %q, want %q", root, expected)
	}

	cfg.Storage.Root = "/srv/tasks"
	root, err = cfg.TasksRoot()
	if err != nil {
		t.Fatalf("tasks root: %v", err)
	}
	if root != "/srv/tasks" {
		t.Errorf("root = %q, want configured value", root)
	}
}
