// Package projection derives the displayed task list and header counts from
// a task collection. Nothing here mutates its input.
package projection

import (
	"slices"

	"github.com/sandeepkv93/taskdash/internal/model"
)

// Project filters tasks and stably sorts a copy. An unknown filter keeps
// every task and an unknown sort key keeps the filtered order.
func Project(tasks []model.Task, filter model.Filter, sortKey model.SortKey) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if keep(task, filter) {
			out = append(out, task)
		}
	}

	switch sortKey {
	case model.SortByPriority:
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return a.Priority.Rank() - b.Priority.Rank()
		})
	case model.SortByDueDate:
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return a.DueDate.Compare(b.DueDate)
		})
	}
	return out
}

func keep(task model.Task, filter model.Filter) bool {
	switch filter {
	case model.FilterActive:
		return !task.Completed
	case model.FilterCompleted:
		return task.Completed
	default:
		return true
	}
}

// RemainingCount counts incomplete tasks across the whole collection.
func RemainingCount(tasks []model.Task) int {
	n := 0
	for _, task := range tasks {
		if !task.Completed {
			n++
		}
	}
	return n
}

type Summary struct {
	Total     int
	Remaining int
	Completed int
}

func Summarize(tasks []model.Task) Summary {
	remaining := RemainingCount(tasks)
	return Summary{
		Total:     len(tasks),
		Remaining: remaining,
		Completed: len(tasks) - remaining,
	}
}

// Progress is the completed share in [0, 1]; zero for an empty collection.
func (s Summary) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}
