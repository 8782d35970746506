package views

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	Summary      string
	Toolbar      string
	LeftPane     string
	RightPane    string
	StatusLine   string
	StatusError  bool
	Footer       string
	Notification string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func statusStyleFor(isError bool) lipgloss.Style {
	if isError {
		return errorStyle
	}
	return statusStyle
}

func RenderApp(data AppData) string {
	left := panelStyle.Width(64).Render(data.LeftPane)
	row := left
	if strings.TrimSpace(data.RightPane) != "" {
		right := panelStyle.Width(52).Render(data.RightPane)
		row = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	status := statusStyleFor(data.StatusError).Render(data.StatusLine)

	lines := []string{headerStyle.Render(data.Header)}
	if data.Summary != "" {
		lines = append(lines, summaryStyle.Render(data.Summary))
	}
	if data.Toolbar != "" {
		lines = append(lines, data.Toolbar)
	}
	lines = append(lines, row, status)
	if data.Notification != "" {
		lines = append(lines, panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

var (
	markdownMu        sync.Mutex
	markdownRenderers = map[int]*glamour.TermRenderer{}
)

// markdownRenderer returns the shared renderer for width, building it once.
func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	markdownMu.Lock()
	defer markdownMu.Unlock()
	if r, ok := markdownRenderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	markdownRenderers[width] = r
	return r, nil
}

// RenderMarkdownWidth renders md word-wrapped to width columns.
func RenderMarkdownWidth(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := markdownRenderer(width)
	if err != nil {
		return md
	}
	markdownMu.Lock()
	out, err := r.Render(md)
	markdownMu.Unlock()
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
