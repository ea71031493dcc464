package client

import "sort"

// Display-only transforms: filtering and sorting never touch the server or
// the persisted order, only what the caller renders.

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type PriorityFilter string

const (
	FilterAll    PriorityFilter = "All"
	FilterLow    PriorityFilter = "Low"
	FilterMedium PriorityFilter = "Medium"
	FilterHigh   PriorityFilter = "High"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// priorityRank: High sorts first in ascending order.
func priorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// FilterByPriority keeps tasks matching f; FilterAll passes everything through.
func FilterByPriority(tasks []Task, f PriorityFilter) []Task {
	if f == FilterAll || f == "" {
		return append([]Task(nil), tasks...)
	}
	out := []Task{}
	for _, t := range tasks {
		if t.Priority == string(f) {
			out = append(out, t)
		}
	}
	return out
}

// SortByPriority returns a sorted copy. Ascending yields High, Medium, Low;
// descending the reverse. The sort is stable so equal priorities keep their
// server order.
func SortByPriority(tasks []Task, dir SortDirection) []Task {
	out := append([]Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == SortDesc {
			return priorityRank(out[i].Priority) > priorityRank(out[j].Priority)
		}
		return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
	})
	return out
}

// Partition splits tasks into pending and completed, preserving order.
func Partition(tasks []Task) (pending, completed []Task) {
	pending, completed = []Task{}, []Task{}
	for _, t := range tasks {
		if t.Status == StatusCompleted {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}

// Display applies filter then sort to the full set and partitions the
// result, so both groups reflect the same view settings.
func Display(tasks []Task, f PriorityFilter, dir SortDirection) (pending, completed []Task) {
	return Partition(SortByPriority(FilterByPriority(tasks, f), dir))
}
