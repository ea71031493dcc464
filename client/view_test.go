package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tasksWithPriorities(priorities ...string) []Task {
	out := make([]Task, len(priorities))
	for i, p := range priorities {
		out[i] = Task{ID: p + "-" + string(rune('a'+i)), Title: p, Priority: p, Status: StatusPending}
	}
	return out
}

func priorities(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Priority
	}
	return out
}

func TestSortByPriority(t *testing.T) {
	tasks := tasksWithPriorities(PriorityLow, PriorityHigh, PriorityMedium)

	asc := SortByPriority(tasks, SortAsc)
	assert.Equal(t, []string{"High", "Medium", "Low"}, priorities(asc))

	desc := SortByPriority(tasks, SortDesc)
	assert.Equal(t, []string{"Low", "Medium", "High"}, priorities(desc))

	// input order untouched
	assert.Equal(t, []string{"Low", "High", "Medium"}, priorities(tasks))
}

func TestSortByPriority_Stable(t *testing.T) {
	tasks := []Task{
		{ID: "1", Priority: PriorityLow},
		{ID: "2", Priority: PriorityHigh},
		{ID: "3", Priority: PriorityLow},
		{ID: "4", Priority: PriorityHigh},
	}
	sorted := SortByPriority(tasks, SortAsc)
	assert.Equal(t, "2", sorted[0].ID)
	assert.Equal(t, "4", sorted[1].ID)
	assert.Equal(t, "1", sorted[2].ID)
	assert.Equal(t, "3", sorted[3].ID)
}

func TestFilterByPriority(t *testing.T) {
	tasks := tasksWithPriorities(PriorityLow, PriorityHigh, PriorityMedium, PriorityHigh)

	assert.Len(t, FilterByPriority(tasks, FilterAll), 4)
	assert.Equal(t, []string{"High", "High"}, priorities(FilterByPriority(tasks, FilterHigh)))
	assert.Empty(t, FilterByPriority(tasks[:1], FilterMedium))
}

func TestDisplay_PartitionReflectsFilterAndSort(t *testing.T) {
	tasks := []Task{
		{ID: "1", Priority: PriorityLow, Status: StatusPending},
		{ID: "2", Priority: PriorityHigh, Status: StatusCompleted},
		{ID: "3", Priority: PriorityMedium, Status: StatusPending},
		{ID: "4", Priority: PriorityHigh, Status: StatusPending},
		{ID: "5", Priority: PriorityLow, Status: StatusCompleted},
	}

	pending, completed := Display(tasks, FilterAll, SortAsc)
	assert.Equal(t, []string{"High", "Medium", "Low"}, priorities(pending))
	assert.Equal(t, []string{"High", "Low"}, priorities(completed))

	// filtering applies to both groups because it runs on the full set
	pending, completed = Display(tasks, FilterHigh, SortAsc)
	assert.Equal(t, []string{"4"}, ids(pending))
	assert.Equal(t, []string{"2"}, ids(completed))
}

func ids(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
