// Package main implements the rem CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/remsh/rem/internal/config"
	"github.com/remsh/rem/internal/editor"
	"github.com/remsh/rem/internal/tui"
	"github.com/remsh/rem/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootFlagStorageRoot string

var rootCmd = &cobra.Command{
	Use:   "rem",
	Short: "rem - a file-backed personal task tracker",
	Long: `rem tracks tasks as markdown files on disk.

Each task lives under the storage root in a directory named after its
status (todo/, doing/, done/); moving a task between statuses moves its
file. Running rem without a subcommand opens the interactive view.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlagStorageRoot, "root", "", "task storage root (overrides config)")
	rootCmd.SilenceUsage = true
}

// openStore resolves configuration and returns the task store plus the
// loaded config.
func openStore() (*task.Store, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, nil, err
	}

	root := rootFlagStorageRoot
	if root == "" {
		root, err = cfg.TasksRoot()
		if err != nil {
			return nil, nil, err
		}
	}

	store, err := task.Open(root)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	return tui.Run(store, editor.Command(cfg.Editor.Command))
}

// findTask loads all tasks and resolves an ID or unique ID prefix.
func findTask(store *task.Store, id string) (task.Task, error) {
	tasks, err := store.LoadByStatuses(task.ValidStatuses()...)
	if err != nil {
		return task.Task{}, err
	}

	var matches []task.Task
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
		if len(id) > 0 && len(id) < len(t.ID) && t.ID[:len(id)] == id {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return task.Task{}, fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
	default:
		return task.Task{}, fmt.Errorf("ambiguous task ID prefix %q", id)
	}
}
