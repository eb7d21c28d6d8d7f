package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Week   WeekTheme
	Pane   PaneTheme
	Footer FooterTheme
}

// HeaderTheme styles the weekday and long date line.
type HeaderTheme struct {
	Weekday lipgloss.Style
	Date    lipgloss.Style
	Key     lipgloss.Style
}

// WeekTheme styles the weekday shortcut bar.
type WeekTheme struct {
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// PaneTheme groups styles used by the schedule and task panes.
type PaneTheme struct {
	Frame       lipgloss.Style
	FocusFrame  lipgloss.Style
	Title       lipgloss.Style
	FocusTitle  lipgloss.Style
	Hour        lipgloss.Style
	Placeholder lipgloss.Style
	Done        lipgloss.Style
	Cursor      lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/command bar.
type FooterTheme struct {
	Help                lipgloss.Style
	Status              lipgloss.Style
	Saved               lipgloss.Style
	Failed              lipgloss.Style
	CommandName         lipgloss.Style
	CommandDescription  lipgloss.Style
	CommandSelectedName lipgloss.Style
	CommandSelectedDesc lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	commandName := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)
	commandDesc := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Header: HeaderTheme{
			Weekday: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Date:    lipgloss.NewStyle().Bold(true),
			Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Week: WeekTheme{
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Underline(true),
			Selected: lipgloss.NewStyle().Reverse(true).Bold(true),
		},
		Pane: PaneTheme{
			Frame:       frame,
			FocusFrame:  frame.BorderForeground(lipgloss.Color("212")),
			Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			FocusTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Hour:        lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Done:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
			Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true),
		},
		Footer: FooterTheme{
			Help:                lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:              lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Saved:               lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
			Failed:              lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			CommandName:         commandName,
			CommandDescription:  commandDesc,
			CommandSelectedName: commandName.Reverse(true),
			CommandSelectedDesc: commandDesc.Reverse(true),
		},
	}
}
