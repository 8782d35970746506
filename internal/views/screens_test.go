package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderSummary(t *testing.T) {
	if got := RenderSummary(4, 5); got != "4 tasks remaining out of 5" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestRenderSelectorMarksCurrent(t *testing.T) {
	out := RenderSelector(SelectorData{Label: "Show:", Options: []string{"All", "Active", "Completed"}, Current: "Active"})
	if !strings.Contains(out, "Show:") || !strings.Contains(out, "[Active]") {
		t.Fatalf("expected current option bracketed: %q", out)
	}
	if strings.Contains(out, "[All]") {
		t.Fatalf("only the current option should be bracketed: %q", out)
	}
}

func TestRenderTaskDetail(t *testing.T) {
	out := RenderTaskDetail(TaskDetailData{ID: "7", Title: "Ship", Priority: "High", Due: "Sep 1", DescriptionView: "notes"})
	for _, want := range []string{"[ ] Ship", "id: 7", "High Priority", "due: Sep 1", "notes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in detail: %q", want, out)
		}
	}
	if got := RenderTaskDetail(TaskDetailData{}); !strings.Contains(got, "(no selection)") {
		t.Fatalf("expected empty selection text: %q", got)
	}
}

func TestRenderFormShowsError(t *testing.T) {
	out := RenderForm(FormData{Priority: "Medium", ErrorText: "title required", FocusedField: FieldTitle})
	for _, want := range []string{"Add a New Task", "Title", "Due Date", "Medium Priority", "error: title required"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in form: %q", want, out)
		}
	}
}

func TestRenderAppLayout(t *testing.T) {
	out := RenderApp(AppData{
		Header:     "Project Dashboard",
		Summary:    RenderSummary(1, 2),
		LeftPane:   RenderEmptyState(),
		StatusLine: "status: ok",
		Footer:     "keys",
	})
	for _, want := range []string{"Project Dashboard", "1 tasks remaining out of 2", "No tasks here!", "status: ok", "keys"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in app: %q", want, out)
		}
	}
}

func TestStatusStyleFollowsFlagNotText(t *testing.T) {
	cases := []struct {
		name    string
		isError bool
		want    lipgloss.Color
	}{
		{name: "success mentioning error", isError: false, want: lipgloss.Color("10")},
		{name: "failure", isError: true, want: lipgloss.Color("9")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := statusStyleFor(tc.isError).GetForeground()
			if got != tc.want {
				t.Fatalf("expected foreground %v, got %v", tc.want, got)
			}
		})
	}

	out := RenderApp(AppData{Header: "h", StatusLine: "status: task added: Fix error handling"})
	if !strings.Contains(out, "status: task added: Fix error handling") {
		t.Fatalf("missing status line: %q", out)
	}
}

func TestRenderMarkdownReusesRenderer(t *testing.T) {
	first, err := markdownRenderer(30)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	second, err := markdownRenderer(30)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	if first != second {
		t.Fatal("expected one renderer per width")
	}
	other, err := markdownRenderer(31)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	if other == first {
		t.Fatal("expected a distinct renderer for another width")
	}

	out := RenderMarkdownWidth("Update the **homepage**", 30)
	if !strings.Contains(out, "homepage") {
		t.Fatalf("expected rendered text, got %q", out)
	}
	if RenderMarkdownWidth("   ", 30) != "" {
		t.Fatal("expected blank markdown to render empty")
	}
}
