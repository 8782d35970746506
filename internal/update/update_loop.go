package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.reconcileSelection()
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Form.IsOpen() {
			return m.handleFormKey(typed)
		}
		if m.Palette.Active {
			// ? is text once a command is being typed.
			if key.Matches(typed, m.Keys.Help) && m.commandInput.Value() == "" {
				m.HelpVisible = !m.HelpVisible
				m.helpModel.ShowAll = m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}
		return m.handleBoardKey(typed)
	case tea.WindowSizeMsg:
		m.helpModel.Width = typed.Width
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case OpenFormMsg:
		m.openForm()
		return m, nil
	case AddTaskMsg:
		m.addTask(typed.Draft)
		return m, nil
	case ToggleTaskMsg:
		m.toggleTask(typed.ID)
		return m, nil
	case DeleteTaskMsg:
		m.deleteTask(typed.ID)
		return m, nil
	case SetFilterMsg:
		m.setFilter(typed.Filter)
		return m, nil
	case SetSortMsg:
		m.setSort(typed.Key)
		return m, nil
	}
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Palette):
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active", IsError: false}
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		m.helpModel.ShowAll = m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown", IsError: false}
		} else {
			m.Status = StatusBar{Text: "help hidden", IsError: false}
		}
	case key.Matches(msg, m.Keys.Add):
		m.openForm()
	case key.Matches(msg, m.Keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.Keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.Keys.Toggle):
		m.toggleTask(m.SelectedTaskID)
	case key.Matches(msg, m.Keys.Delete):
		m.deleteTask(m.SelectedTaskID)
	case key.Matches(msg, m.Keys.CycleFilter):
		m.setFilter(m.Board.Filter().Next())
	case key.Matches(msg, m.Keys.ShowAll):
		m.setFilter(model.FilterAll)
	case key.Matches(msg, m.Keys.ShowActive):
		m.setFilter(model.FilterActive)
	case key.Matches(msg, m.Keys.ShowDone):
		m.setFilter(model.FilterCompleted)
	case key.Matches(msg, m.Keys.CycleSort):
		m.setSort(m.Board.SortKey().Next())
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := m.renderTaskListView()
	rightPane := m.renderDetailPane()
	if m.Form.IsOpen() {
		rightPane = m.renderFormView()
	}
	rightPane = strings.TrimSpace(strings.Join([]string{
		rightPane,
		m.renderCommandPalette(),
		m.renderHelpIfVisible(),
	}, "\n"))

	summary := m.Board.Summary()
	return views.RenderApp(views.AppData{
		Header:       "Project Dashboard",
		Summary:      views.RenderSummary(summary.Remaining, summary.Total) + "  " + m.summaryBar.ViewAs(summary.Progress()),
		Toolbar:      m.renderToolbar(),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: m.renderNotificationsView(),
		Footer:       m.renderFooter(),
	})
}
