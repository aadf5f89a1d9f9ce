package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/extlang/extc/internal/diagnostic"
	"github.com/extlang/extc/internal/exttypes"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	warningStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	slotNameStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

// renderDiagnostics colors each diagnostic line by severity
func renderDiagnostics(diag *diagnostic.Diagnostics, filename string) string {
	var lines []string
	for _, d := range diag.All() {
		line := fmt.Sprintf("%s[%s:%d:%d]: %s",
			d.Severity, filename, d.Line, d.Column, d.Message)
		switch d.Severity {
		case diagnostic.Error:
			line = errorStyle.Render(line)
		case diagnostic.Warning:
			line = warningStyle.Render(line)
		default:
			line = mutedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderClassLayout prints both slot tables of one class with fixed
// slot positions
func renderClassLayout(ext *exttypes.ExtensionType) string {
	var b strings.Builder

	header := ext.Name
	if len(ext.Parents) > 0 {
		var parents []string
		for _, p := range ext.Parents {
			parents = append(parents, p.Name)
		}
		header += mutedStyle.Render("(" + strings.Join(parents, ", ") + ")")
	}
	b.WriteString(headerStyle.Render("class ") + header + "\n")

	b.WriteString(renderTable(ext.Attributes))
	b.WriteString(renderTable(ext.Methods))

	return b.String()
}

func renderTable(t *exttypes.Table) string {
	var lines []string
	lines = append(lines, mutedStyle.Render(t.Kind.String()+" table"))
	if t.Len() == 0 {
		lines = append(lines, mutedStyle.Render("  (empty)"))
	}
	for i, slot := range t.Slots {
		lines = append(lines, fmt.Sprintf("  [%d] %s: %s",
			i, slotNameStyle.Render(slot.Name), slot.Type))
	}
	return borderStyle.Render(strings.Join(lines, "\n")) + "\n"
}
