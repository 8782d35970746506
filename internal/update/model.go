package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/taskdash/internal/board"
	"github.com/sandeepkv93/taskdash/internal/form"
	"github.com/sandeepkv93/taskdash/internal/model"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type Model struct {
	Board          *board.Board
	Form           form.State
	Cursor         int
	SelectedTaskID string
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	Status         StatusBar
	Keys           KeyMap
	Quitting       bool
	LastError      error
	// Bubble components used for rich TUI controls
	taskTable    table.Model
	titleInput   textinput.Model
	dueInput     textinput.Model
	descArea     textarea.Model
	commandInput textinput.Model
	summaryBar   progress.Model
	helpModel    help.Model
	detailView   viewport.Model
	formField    int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type OpenFormMsg struct{}

type AddTaskMsg struct {
	Draft form.Draft
}

type ToggleTaskMsg struct {
	ID string
}

type DeleteTaskMsg struct {
	ID string
}

type SetFilterMsg struct {
	Filter model.Filter
}

type SetSortMsg struct {
	Key model.SortKey
}

func NewModel(b *board.Board) Model {
	if b == nil {
		b = board.New(nil)
	}
	m := Model{
		Board: b,
		Form:  form.Initial(),
		Keys:  DefaultKeyMap(),
	}
	m.initBubbleComponents()
	m.reconcileSelection()
	m.syncBubbleData()
	return m
}

func NewModelWithConfig(cfg RuntimeConfig) (Model, error) {
	b, err := NewBoardFromConfig(cfg)
	if err != nil {
		return Model{}, err
	}
	return NewModel(b), nil
}
