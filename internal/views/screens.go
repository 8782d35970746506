package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	activeOptionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Underline(true)
	optionStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	modalStyle        = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	focusLabelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	completedStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))

	priorityColors = map[string]lipgloss.Color{
		"High":   lipgloss.Color("#f43f5e"),
		"Medium": lipgloss.Color("#f59e0b"),
		"Low":    lipgloss.Color("#10b981"),
	}
)

type SelectorData struct {
	Label   string
	Options []string
	Current string
}

type TaskDetailData struct {
	ID              string
	Title           string
	Priority        string
	Due             string
	Completed       bool
	DescriptionView string
}

type FormData struct {
	TitleView       string
	DescriptionView string
	Priority        string
	DueView         string
	FocusedField    int
	ErrorText       string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

// Form field indices, in tab order.
const (
	FieldTitle = iota
	FieldDescription
	FieldPriority
	FieldDueDate
)

func RenderSummary(remaining, total int) string {
	return fmt.Sprintf("%d tasks remaining out of %d", remaining, total)
}

func RenderSelector(data SelectorData) string {
	parts := make([]string, 0, len(data.Options))
	for _, opt := range data.Options {
		if opt == data.Current {
			parts = append(parts, activeOptionStyle.Render("["+opt+"]"))
			continue
		}
		parts = append(parts, optionStyle.Render(" "+opt+" "))
	}
	return fmt.Sprintf("%s %s", data.Label, strings.Join(parts, " "))
}

func RenderToolbar(filter, sort SelectorData) string {
	return RenderSelector(filter) + "   " + RenderSelector(sort)
}

func RenderTaskList(tableView string) string {
	return "tasks:\n" + tableView
}

func RenderEmptyState() string {
	return "No tasks here!\nLooks like it's a quiet day. Press [a] to add a new task."
}

func PriorityBadge(priority string) string {
	style := lipgloss.NewStyle().Bold(true)
	if c, ok := priorityColors[priority]; ok {
		style = style.Foreground(c)
	}
	return style.Render(priority + " Priority")
}

func CompletionMark(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func RenderTaskDetail(data TaskDetailData) string {
	if strings.TrimSpace(data.ID) == "" {
		return "details:\n(no selection)"
	}
	title := data.Title
	if data.Completed {
		title = completedStyle.Render(title)
	}
	var b strings.Builder
	b.WriteString("details:\n")
	b.WriteString(fmt.Sprintf("%s %s\n", CompletionMark(data.Completed), title))
	b.WriteString(fmt.Sprintf("id: %s\n", data.ID))
	b.WriteString(PriorityBadge(data.Priority) + "\n")
	b.WriteString(fmt.Sprintf("due: %s\n", data.Due))
	if strings.TrimSpace(data.DescriptionView) != "" {
		b.WriteString("\n" + data.DescriptionView)
	}
	return strings.TrimSpace(b.String())
}

func RenderForm(data FormData) string {
	label := func(field int, text string) string {
		if field == data.FocusedField {
			return focusLabelStyle.Render("> " + text)
		}
		return "  " + text
	}

	var b strings.Builder
	b.WriteString("Add a New Task\n")
	b.WriteString("keys: [tab] next field [←/→] priority [enter] add [esc] cancel\n\n")
	b.WriteString(label(FieldTitle, "Title") + "\n" + data.TitleView + "\n")
	b.WriteString(label(FieldDescription, "Description") + "\n" + data.DescriptionView + "\n")
	b.WriteString(label(FieldPriority, "Priority") + ": " + PriorityBadge(data.Priority) + "\n")
	b.WriteString(label(FieldDueDate, "Due Date") + "\n" + data.DueView)
	if data.ErrorText != "" {
		b.WriteString("\n" + errorStyle.Render("error: "+data.ErrorText))
	}
	return modalStyle.Render(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
