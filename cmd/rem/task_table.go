package main

import (
	"fmt"
	"time"

	"github.com/remsh/rem/internal/ui"
	"github.com/remsh/rem/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, time.Now().UTC()))
}

func formatTaskTable(tasks []task.Task, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "AGE", "NAME"}, len(tasks))

	for _, t := range tasks {
		builder.AddRow([]string{
			t.ID,
			string(t.Status),
			ui.FormatTimeAgo(t.CreatedAt, now),
			ui.TruncateTableCell(t.Name),
		})
	}

	return builder.String()
}
