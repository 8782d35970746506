package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/taskdash/internal/views"
)

type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Add          key.Binding
	Toggle       key.Binding
	Delete       key.Binding
	CycleFilter  key.Binding
	ShowAll      key.Binding
	ShowActive   key.Binding
	ShowDone     key.Binding
	CycleSort    key.Binding
	Palette      key.Binding
	Help         key.Binding
	Quit         key.Binding
	FormNext     key.Binding
	FormPrev     key.Binding
	FormSubmit   key.Binding
	FormCancel   key.Binding
	FormClose    key.Binding
	PriorityNext key.Binding
	PriorityPrev key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:          key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add task")),
		Toggle:       key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle done")),
		Delete:       key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		CycleFilter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
		ShowAll:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		ShowActive:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		ShowDone:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		CycleSort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort")),
		Palette:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		FormNext:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		FormPrev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		FormSubmit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "add")),
		FormCancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		FormClose:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "close")),
		PriorityNext: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "lower priority")),
		PriorityPrev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "raise priority")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.CycleFilter, k.CycleSort, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.Add, k.Palette, k.Help, k.Quit},
		{k.CycleFilter, k.ShowAll, k.ShowActive, k.ShowDone, k.CycleSort},
	}
}

type formKeyMap struct {
	keys KeyMap
}

func (f formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{f.keys.FormNext, f.keys.FormPrev, f.keys.PriorityPrev, f.keys.PriorityNext, f.keys.FormSubmit, f.keys.FormCancel, f.keys.FormClose}
}

func (f formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: []string{
			"- palette: add <title> due:YYYY-MM-DD prio:high",
			"- palette: filter active | sort due | toggle <id> | delete <id>",
		},
		HelpView: m.helpModel.FullHelpView(m.Keys.FullHelp()),
	})
}

func (m Model) renderFooter() string {
	if m.Form.IsOpen() {
		return m.helpModel.View(formKeyMap{keys: m.Keys})
	}
	return m.helpModel.View(m.Keys)
}
