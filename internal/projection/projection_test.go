package projection

import (
	"reflect"
	"testing"

	"github.com/sandeepkv93/taskdash/internal/model"
)

func scenarioTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "one", Priority: model.PriorityHigh, DueDate: model.MustDate("2024-08-20")},
		{ID: "2", Title: "two", Priority: model.PriorityLow, DueDate: model.MustDate("2024-08-15"), Completed: true},
		{ID: "3", Title: "three", Priority: model.PriorityMedium, DueDate: model.MustDate("2024-08-18")},
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestProjectScenarios(t *testing.T) {
	cases := []struct {
		name    string
		filter  model.Filter
		sortKey model.SortKey
		want    []string
	}{
		{"all by priority", model.FilterAll, model.SortByPriority, []string{"1", "3", "2"}},
		{"completed by priority", model.FilterCompleted, model.SortByPriority, []string{"2"}},
		{"active by priority", model.FilterActive, model.SortByPriority, []string{"1", "3"}},
		{"all by due date", model.FilterAll, model.SortByDueDate, []string{"2", "3", "1"}},
		{"active by due date", model.FilterActive, model.SortByDueDate, []string{"3", "1"}},
		{"unknown sort keeps order", model.FilterAll, model.SortKey("title"), []string{"1", "2", "3"}},
		{"unknown filter keeps all", model.Filter("Archived"), model.SortKey(""), []string{"1", "2", "3"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Project(scenarioTasks(), tc.filter, tc.sortKey))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("project = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProjectDoesNotReorderSource(t *testing.T) {
	tasks := scenarioTasks()
	_ = Project(tasks, model.FilterAll, model.SortByDueDate)
	if !reflect.DeepEqual(tasks, scenarioTasks()) {
		t.Fatalf("source collection was modified: %v", ids(tasks))
	}
}

func TestProjectPrioritySortIsStable(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Priority: model.PriorityLow},
		{ID: "b", Priority: model.PriorityHigh},
		{ID: "c", Priority: model.PriorityLow},
		{ID: "d", Priority: model.PriorityHigh},
		{ID: "e", Priority: model.PriorityMedium, Completed: true},
		{ID: "f", Priority: model.PriorityMedium},
	}
	got := ids(Project(tasks, model.FilterAll, model.SortByPriority))
	want := []string{"b", "d", "e", "f", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("project = %v, want %v", got, want)
	}
}

func TestProjectDueDateTiesKeepOrder(t *testing.T) {
	due := model.MustDate("2024-09-01")
	tasks := []model.Task{
		{ID: "x", DueDate: due},
		{ID: "y", DueDate: model.MustDate("2024-08-01")},
		{ID: "z", DueDate: due},
	}
	got := ids(Project(tasks, model.FilterAll, model.SortByDueDate))
	want := []string{"y", "x", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("project = %v, want %v", got, want)
	}
}

func TestProjectActiveIsIncompleteSubsequence(t *testing.T) {
	tasks := model.SampleTasks()
	got := Project(tasks, model.FilterActive, model.SortKey(""))
	var want []model.Task
	for _, task := range tasks {
		if !task.Completed {
			want = append(want, task)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("active projection = %v, want %v", ids(got), ids(want))
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	tasks := model.SampleTasks()
	first := Project(tasks, model.FilterAll, model.SortByPriority)
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(Project(tasks, model.FilterAll, model.SortByPriority), first) {
			t.Fatal("expected identical output for identical input")
		}
	}
}

func TestRemainingCountIgnoresFilter(t *testing.T) {
	tasks := scenarioTasks()
	if got := RemainingCount(tasks); got != 2 {
		t.Fatalf("remaining = %d, want 2", got)
	}
	s := Summarize(tasks)
	if s.Total != 3 || s.Remaining != 2 || s.Completed != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Remaining != s.Total-s.Completed {
		t.Fatalf("summary does not add up: %+v", s)
	}
	if p := s.Progress(); p < 0.33 || p > 0.34 {
		t.Fatalf("unexpected progress %f", p)
	}
	if (Summary{}).Progress() != 0 {
		t.Fatal("expected zero progress for empty summary")
	}
}
