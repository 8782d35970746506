package update

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/taskdash/internal/form"
	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/views"
)

const detailWidth = 48

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "Done", Width: 4},
		{Title: "Title", Width: 32},
		{Title: "Priority", Width: 8},
		{Title: "Due", Width: 8},
	}
	m.taskTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(12))

	m.titleInput = textinput.New()
	m.titleInput.Prompt = "› "
	m.titleInput.Placeholder = "e.g., Design the new dashboard"
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 40

	m.descArea = textarea.New()
	m.descArea.Placeholder = "Add more details (markdown)..."
	m.descArea.ShowLineNumbers = false
	m.descArea.SetWidth(42)
	m.descArea.SetHeight(3)

	m.dueInput = textinput.New()
	m.dueInput.Prompt = "› "
	m.dueInput.Placeholder = "YYYY-MM-DD"
	m.dueInput.CharLimit = 10
	m.dueInput.Width = 12

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.summaryBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(24))
	m.helpModel = help.New()
	m.detailView = viewport.New(detailWidth, 8)
}

// syncBubbleData pushes board state into the bubble components.
func (m *Model) syncBubbleData() {
	visible := m.Board.View()
	rows := make([]table.Row, 0, len(visible))
	for _, task := range visible {
		rows = append(rows, table.Row{
			views.CompletionMark(task.Completed),
			task.Title,
			string(task.Priority),
			task.DueDate.Short(),
		})
	}
	m.taskTable.SetRows(rows)
	if len(rows) > 0 {
		m.taskTable.SetCursor(m.Cursor)
	}

	m.commandInput.SetValue(m.Palette.Input)

	if task, ok := m.currentTask(); ok {
		m.detailView.SetContent(views.RenderMarkdownWidth(task.Description, detailWidth-2))
		m.detailView.GotoTop()
	} else {
		m.detailView.SetContent("")
	}
}

// reconcileSelection keeps the selected task under the cursor across
// re-projections, falling back to the nearest row when it disappears.
func (m *Model) reconcileSelection() {
	visible := m.Board.View()
	if len(visible) == 0 {
		m.Cursor = 0
		m.SelectedTaskID = ""
		return
	}
	if idx := slices.IndexFunc(visible, func(t model.Task) bool { return t.ID == m.SelectedTaskID }); idx >= 0 {
		m.Cursor = idx
		return
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(visible) {
		m.Cursor = len(visible) - 1
	}
	m.SelectedTaskID = visible[m.Cursor].ID
}

func (m *Model) moveCursor(delta int) {
	visible := m.Board.View()
	if len(visible) == 0 {
		return
	}
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(visible) {
		m.Cursor = len(visible) - 1
	}
	m.SelectedTaskID = visible[m.Cursor].ID
}

func (m Model) currentTask() (model.Task, bool) {
	if m.SelectedTaskID == "" {
		return model.Task{}, false
	}
	return m.Board.Get(m.SelectedTaskID)
}

func (m *Model) addTask(d form.Draft) {
	task, err := m.Board.AddTask(d)
	if err != nil {
		m.setValidationError(err)
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("task added: %s", task.Title), IsError: false}
	m.notify("Task", m.Status.Text, "info")
}

func (m *Model) setValidationError(err error) {
	var ve *form.ValidationError
	if !errors.As(err, &ve) {
		m.LastError = err
	}
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.notify("Validation", err.Error(), "error")
}

func (m *Model) toggleTask(id string) {
	before, ok := m.Board.Get(id)
	m.Board.ToggleComplete(id)
	if !ok {
		return
	}
	if before.Completed {
		m.Status = StatusBar{Text: fmt.Sprintf("task reopened: %s", before.Title), IsError: false}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("task completed: %s", before.Title), IsError: false}
	}
	m.notify("Task", m.Status.Text, "info")
}

func (m *Model) deleteTask(id string) {
	before, ok := m.Board.Get(id)
	m.Board.DeleteTask(id)
	if !ok {
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("task deleted: %s", before.Title), IsError: false}
	m.notify("Task", m.Status.Text, "info")
}

func (m *Model) setFilter(f model.Filter) {
	if !f.IsValid() {
		return
	}
	m.Board.SetFilter(f)
	m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", f), IsError: false}
}

func (m *Model) setSort(k model.SortKey) {
	if !k.IsValid() {
		return
	}
	m.Board.SetSortKey(k)
	m.Status = StatusBar{Text: fmt.Sprintf("sort: %s", k.Label()), IsError: false}
}

func (m Model) renderToolbar() string {
	filters := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		filters = append(filters, string(f))
	}
	sorts := make([]string, 0, len(model.SortKeys))
	for _, k := range model.SortKeys {
		sorts = append(sorts, k.Label())
	}
	return views.RenderToolbar(
		views.SelectorData{Label: "Show:", Options: filters, Current: string(m.Board.Filter())},
		views.SelectorData{Label: "Sort by:", Options: sorts, Current: m.Board.SortKey().Label()},
	)
}

func (m Model) renderTaskListView() string {
	if len(m.Board.View()) == 0 {
		return views.RenderEmptyState()
	}
	return views.RenderTaskList(m.taskTable.View())
}

func (m Model) renderDetailPane() string {
	task, ok := m.currentTask()
	if !ok {
		return views.RenderTaskDetail(views.TaskDetailData{})
	}
	return views.RenderTaskDetail(views.TaskDetailData{
		ID:              task.ID,
		Title:           task.Title,
		Priority:        string(task.Priority),
		Due:             task.DueDate.Short(),
		Completed:       task.Completed,
		DescriptionView: m.detailView.View(),
	})
}
