package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/remsh/rem/internal/editor"
	"github.com/remsh/rem/internal/ui"
	"github.com/remsh/rem/task"
)

var addCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var (
	listAll    bool
	listStatus string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks grouped by status.

By default only todo and doing tasks are shown; --all includes done
tasks, and --status limits output to one status.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var forwardCmd = &cobra.Command{
	Use:   "forward <id>",
	Short: "Move a task to the next status",
	Aliases: []string{
		"next",
	},
	Args: cobra.ExactArgs(1),
	RunE: runForward,
}

var backCmd = &cobra.Command{
	Use:   "back <id>",
	Short: "Move a task to the previous status",
	Args:  cobra.ExactArgs(1),
	RunE:  runBack,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a task's details and notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var pathCmd = &cobra.Command{
	Use:   "path <id>",
	Short: "Print the path of a task's file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPath,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Open a task's file in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "include done tasks")
	listCmd.Flags().StringVar(&listStatus, "status", "", "show only tasks with this status (todo, doing, done)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(addCmd, listCmd, showCmd, forwardCmd, backCmd, pathCmd, editCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	created, err := store.Create(strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Printf("Created task %s: %s\n", created.ID, created.Name)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	statuses, err := listStatuses()
	if err != nil {
		return err
	}

	tasks, err := store.LoadByStatuses(statuses...)
	if err != nil {
		return err
	}
	tasks = task.GroupAndSort(tasks)

	if listJSON {
		return printTaskJSON(tasks)
	}
	printTaskTable(tasks)
	return nil
}

func listStatuses() ([]task.Status, error) {
	if listStatus != "" {
		status := task.Status(strings.ToLower(listStatus))
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", task.ErrInvalidStatus, listStatus)
		}
		return []task.Status{status}, nil
	}
	if listAll {
		return task.ValidStatuses(), nil
	}
	return []task.Status{task.StatusTodo, task.StatusDoing}, nil
}

func runForward(cmd *cobra.Command, args []string) error {
	return runTransition(args[0], true)
}

func runBack(cmd *cobra.Command, args []string) error {
	return runTransition(args[0], false)
}

func runTransition(id string, forward bool) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	t, err := findTask(store, id)
	if err != nil {
		return err
	}

	before := t.Status
	if forward {
		err = store.Forward(&t)
	} else {
		err = store.Backward(&t)
	}
	if err != nil {
		return err
	}

	if t.Status == before {
		fmt.Printf("Task %s is already %s\n", t.ID, t.Status)
		return nil
	}
	fmt.Printf("Task %s: %s -> %s\n", t.ID, before, t.Status)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	t, err := findTask(store, args[0])
	if err != nil {
		return err
	}
	body, err := store.ReadBody(t)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	fmt.Printf("%s  %s\n", t.ID, t.Name)
	fmt.Printf("status   %s\n", t.Status)
	fmt.Printf("created  %s\n", ui.FormatTimeAgo(t.CreatedAt, now))
	fmt.Printf("updated  %s\n", ui.FormatTimeAgo(t.UpdatedAt, now))

	if strings.TrimSpace(body) == "" {
		return nil
	}
	fmt.Println()
	fmt.Print(renderMarkdownBody(body))
	return nil
}

// renderMarkdownBody renders task notes for terminal output, falling
// back to the raw text when rendering fails.
func renderMarkdownBody(body string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return body + "\n"
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		return body + "\n"
	}
	return rendered
}

func runPath(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	t, err := findTask(store, args[0])
	if err != nil {
		return err
	}

	fmt.Println(store.Path(t))
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !editor.IsInteractive() {
		return fmt.Errorf("edit requires an interactive terminal")
	}

	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	t, err := findTask(store, args[0])
	if err != nil {
		return err
	}

	return editor.Edit(editor.Command(cfg.Editor.Command), store.Path(t))
}

func printTaskJSON(tasks []task.Task) error {
	type record struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Status    string `json:"status"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
	}

	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, record{
			ID:        t.ID,
			Name:      t.Name,
			Status:    string(t.Status),
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
			UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
