package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdash/internal/commands"
	"github.com/sandeepkv93/taskdash/internal/form"
	"github.com/sandeepkv93/taskdash/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			draft := form.NewDraft()
			draft.Title = a.Title
			draft.DueDate = a.Due
			if a.Priority != "" {
				draft.Priority = model.Priority(a.Priority)
			}
			task, err := m.Board.AddTask(draft)
			if err != nil {
				return commands.Result{}, err
			}
			m.SelectedTaskID = task.ID
			return commands.Result{Message: fmt.Sprintf("task added: %s", task.Title)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			filter, err := model.ParseFilter(f.Filter)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.Board.SetFilter(filter)
			return commands.Result{Message: fmt.Sprintf("filter: %s", filter)}, nil
		},
		Sort: func(s commands.SortArgs) (commands.Result, error) {
			k, err := model.ParseSortKey(s.Key)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.Board.SetSortKey(k)
			return commands.Result{Message: fmt.Sprintf("sort: %s", k.Label())}, nil
		},
		Toggle: func(t commands.TargetArgs) (commands.Result, error) {
			task, ok := m.Board.Get(t.ID)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task with id %s", t.ID)}
			}
			m.Board.ToggleComplete(t.ID)
			return commands.Result{Message: fmt.Sprintf("toggled: %s", task.Title)}, nil
		},
		Delete: func(t commands.TargetArgs) (commands.Result, error) {
			task, ok := m.Board.Get(t.ID)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task with id %s", t.ID)}
			}
			m.Board.DeleteTask(t.ID)
			return commands.Result{Message: fmt.Sprintf("task deleted: %s", task.Title)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.closePalette()
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}
