package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mohsinali45213/folio/internal/model"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	progressStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	plannedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	unreadStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	beginnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	midStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	advancedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Markdown renders a markdown body for the terminal, used for bios and long
// descriptions.
func Markdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func Field(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func StatusBadge(status model.ProjectStatus) string {
	switch status {
	case model.StatusCompleted:
		return completedStyle.Render(string(status))
	case model.StatusInProgress:
		return progressStyle.Render(string(status))
	default:
		return plannedStyle.Render(string(status))
	}
}

func ProficiencyBadge(p model.Proficiency) string {
	switch p {
	case model.Advanced:
		return advancedStyle.Render(string(p))
	case model.Intermediate:
		return midStyle.Render(string(p))
	default:
		return beginnerStyle.Render(string(p))
	}
}

func StatusText(s model.MessageStatus) string {
	if s == model.MessageUnread {
		return unreadStyle.Render(string(s))
	}
	return string(s)
}

// EntityHeader prints a bold title followed by indented field lines.
func EntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}
