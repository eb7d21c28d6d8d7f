package bottombar

import (
	"fmt"
	"strings"

	"tableflip.dev/dayplan/pkg/runner/tea/internal/theme"
)

// Mode represents the UI mode that influences footer layout.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit
	ModeCommand
	ModeHelp
)

// StatusKind picks the status style.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSaved
	StatusFailed
)

// CommandOption describes a command palette entry.
type CommandOption struct {
	Name        string
	Description string
}

// Model tracks footer/help/status rendering state.
type Model struct {
	mode            Mode
	helpLine        string
	statusLine      string
	statusKind      StatusKind
	commandInput    string
	commandView     string
	commandOptions  []CommandOption
	filteredOptions []CommandOption
	selected        int
	maxSuggestions  int
	styles          theme.FooterTheme
}

// New returns a footer model with sensible defaults.
func New(styles theme.FooterTheme) Model {
	return Model{
		mode:           ModeNormal,
		maxSuggestions: 6,
		styles:         styles,
	}
}

// Mode reports the current mode.
func (m Model) Mode() Mode {
	return m.mode
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	if mode != ModeCommand {
		m.filteredOptions = nil
		m.commandInput = ""
		m.commandView = ""
		m.selected = 0
	} else {
		m.filterSuggestions(m.commandInput)
	}
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetStatus sets the status message to display.
func (m *Model) SetStatus(kind StatusKind, status string) {
	m.statusKind = kind
	m.statusLine = status
}

// Status returns the current status text.
func (m Model) Status() (StatusKind, string) {
	return m.statusKind, m.statusLine
}

// ClearStatus drops the status message.
func (m *Model) ClearStatus() {
	m.statusKind = StatusInfo
	m.statusLine = ""
}

// SetCommandDefinitions configures the available command palette entries.
func (m *Model) SetCommandDefinitions(cmds []CommandOption) {
	m.commandOptions = cmds
	m.filterSuggestions(m.commandInput)
}

// UpdateCommandInput refreshes the command palette filter and rendered line.
func (m *Model) UpdateCommandInput(value string, view string) {
	m.commandInput = value
	m.commandView = ":" + view
	m.filterSuggestions(value)
}

// MoveSelection moves the highlighted suggestion by delta, wrapping.
func (m *Model) MoveSelection(delta int) {
	n := len(m.filteredOptions)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// Selected returns the highlighted suggestion.
func (m Model) Selected() (CommandOption, bool) {
	if m.selected < 0 || m.selected >= len(m.filteredOptions) {
		return CommandOption{}, false
	}
	return m.filteredOptions[m.selected], true
}

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int {
	_, h := m.View()
	return h
}

// View renders the footer string and reports lines consumed.
func (m Model) View() (string, int) {
	switch m.mode {
	case ModeCommand:
		return m.renderCommandMode()
	default:
		return m.renderStatusLine(), 1
	}
}

func (m Model) statusStyleRender(s string) string {
	switch m.statusKind {
	case StatusSaved:
		return m.styles.Saved.Render(s)
	case StatusFailed:
		return m.styles.Failed.Render(s)
	}
	return m.styles.Status.Render(s)
}

func (m Model) renderStatusLine() string {
	var segments []string
	if m.statusLine != "" {
		segments = append(segments, m.statusStyleRender(m.statusLine))
	}
	if m.helpLine != "" && m.mode != ModeHelp {
		segments = append(segments, m.styles.Help.Render(m.helpLine))
	}
	if len(segments) == 0 {
		return " "
	}
	return strings.Join(segments, " │ ")
}

func (m Model) renderCommandMode() (string, int) {
	var lines []string
	if len(m.filteredOptions) == 0 && m.statusLine != "" {
		lines = append(lines, m.statusStyleRender(m.statusLine))
	} else {
		limit := m.maxSuggestions
		if limit <= 0 || limit > len(m.filteredOptions) {
			limit = len(m.filteredOptions)
		}
		for i := 0; i < limit; i++ {
			opt := m.filteredOptions[i]
			nameStyle, descStyle := m.styles.CommandName, m.styles.CommandDescription
			if i == m.selected {
				nameStyle, descStyle = m.styles.CommandSelectedName, m.styles.CommandSelectedDesc
			}
			name := nameStyle.Render(":" + opt.Name)
			if opt.Description == "" {
				lines = append(lines, name)
			} else {
				lines = append(lines, fmt.Sprintf("%s  %s", name, descStyle.Render(opt.Description)))
			}
		}
	}
	commandLine := m.commandView
	if commandLine == "" {
		commandLine = ":"
	}
	lines = append(lines, commandLine)
	return strings.Join(lines, "\n"), len(lines)
}

func (m *Model) filterSuggestions(input string) {
	if m.mode != ModeCommand {
		m.filteredOptions = nil
		return
	}
	prefix := strings.ToLower(strings.TrimSpace(input))
	if i := strings.IndexByte(prefix, ' '); i >= 0 {
		prefix = prefix[:i]
	}
	m.filteredOptions = m.filteredOptions[:0]
	for _, opt := range m.commandOptions {
		if prefix == "" || strings.HasPrefix(strings.ToLower(opt.Name), prefix) {
			m.filteredOptions = append(m.filteredOptions, opt)
		}
	}
	if m.selected >= len(m.filteredOptions) {
		m.selected = 0
	}
}
