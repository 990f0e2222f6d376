package task

import "sort"

// GroupAndSort returns the canonical display order: tasks grouped by
// status in todo, doing, done order, sorted by creation time ascending
// within each group. Ties keep their original enumeration order. The
// input slice is not modified.
func GroupAndSort(tasks []Task) []Task {
	ordered := make([]Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Status.Rank() != ordered[j].Status.Rank() {
			return ordered[i].Status.Rank() < ordered[j].Status.Rank()
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})
	return ordered
}

// FilterByStatus returns the tasks with the given status, preserving
// order.
func FilterByStatus(tasks []Task, status Status) []Task {
	var filtered []Task
	for _, t := range tasks {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
