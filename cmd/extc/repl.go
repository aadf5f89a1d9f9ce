package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/extlang/extc/internal/compiler"
	"github.com/extlang/extc/internal/validate"
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

// replModel accumulates class declarations one entry at a time and
// re-validates the whole session on each one. Declarations that fail
// validation are reported and not committed.
type replModel struct {
	textInput   textinput.Model
	mode        validate.Mode
	declared    []string // committed declarations, in entry order
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	CtrlK key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous entry"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next entry"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "validate"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	CtrlK: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "class Point { attr x: Float; }"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 72
	ti.PromptStyle = headerStyle
	ti.Prompt = "extc> "

	return replModel{
		textInput:  ti,
		mode:       validate.Strict,
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = nil
			return m, nil

		case key.Matches(msg, keys.CtrlK):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			output, isErr := m.declare(input)
			m.history = append(m.history, historyEntry{
				input:  input,
				output: output,
				isErr:  isErr,
			})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)

	switch parts[0] {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = nil
	case ":layout", ":l":
		m.history = append(m.history, historyEntry{
			input:  input,
			output: m.renderLayouts(),
		})
	case ":mode", ":m":
		if len(parts) != 2 {
			m.history = append(m.history, historyEntry{
				input:  input,
				output: fmt.Sprintf("current mode: %s", m.mode),
			})
			break
		}
		mode, err := validate.ParseMode(parts[1])
		if err != nil {
			m.history = append(m.history, historyEntry{input: input, output: err.Error(), isErr: true})
			break
		}
		m.mode = mode
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("mode set to %s", mode),
		})
	case ":reset", ":r":
		m.declared = nil
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "session reset",
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("unknown command: %s", parts[0]),
			isErr:  true,
		})
	}
	return m, nil
}

// declare validates the session with the new declaration appended and
// commits it only when validation passes
func (m *replModel) declare(input string) (string, bool) {
	candidate := append(append([]string{}, m.declared...), input)
	res := compiler.Analyze(strings.Join(candidate, "\n\n"), m.mode)

	if res.Diagnostics.HasErrors() {
		return res.Diagnostics.Format("repl"), true
	}

	m.declared = candidate

	output := fmt.Sprintf("ok: %d class(es) validated in %s mode", len(res.Classes), m.mode)
	if res.Diagnostics.WarningCount() > 0 {
		output += "\n" + res.Diagnostics.Format("repl")
	}
	return output, false
}

// renderLayouts shows the slot tables of every committed class
func (m *replModel) renderLayouts() string {
	if len(m.declared) == 0 {
		return "no classes declared"
	}
	res := compiler.Analyze(strings.Join(m.declared, "\n\n"), m.mode)

	var b strings.Builder
	for i, ext := range res.Classes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderClassLayout(ext))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("extc repl")
	modeTag := mutedStyle.Render(fmt.Sprintf("(%s mode)", m.mode))
	b.WriteString(header + " " + modeTag + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 10
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		}
		for _, line := range strings.Split(entry.output, "\n") {
			if entry.isErr {
				b.WriteString("  " + errorStyle.Render(line) + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := slotNameStyle.Render("ctrl+k") + mutedStyle.Render(" help  ") +
		slotNameStyle.Render("ctrl+l") + mutedStyle.Render(" clear  ") +
		slotNameStyle.Render("ctrl+c") + mutedStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate entry history"},
		{"Enter", "Validate a class declaration"},
		{":layout", "Show slot tables of declared classes"},
		{":mode", "Show or set the mode (strict/permissive)"},
		{":reset", "Forget all declared classes"},
		{":clear", "Clear history"},
		{":quit", "Exit"},
	}

	var lines []string
	lines = append(lines, headerStyle.Render("Help"))
	for _, h := range help {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			slotNameStyle.Render(fmt.Sprintf("%-8s", h.key)),
			mutedStyle.Render(h.desc)))
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
