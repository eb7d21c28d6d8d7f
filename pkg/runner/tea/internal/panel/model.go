// Package panel frames one area of the day sheet.
package panel

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"tableflip.dev/dayplan/pkg/runner/tea/internal/theme"
)

// Model renders a titled, bordered block of lines.
type Model struct {
	title   string
	lines   []string
	focused bool
	width   int
	styles  theme.PaneTheme
}

// New returns a panel using styles.
func New(styles theme.PaneTheme) Model {
	return Model{styles: styles}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetFocused toggles the highlighted frame.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// SetWidth fixes the outer width. Zero lets the content decide.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// View returns the rendered panel string and its total height in lines.
func (m Model) View() (string, int) {
	frame, title := m.styles.Frame, m.styles.Title
	if m.focused {
		frame, title = m.styles.FocusFrame, m.styles.FocusTitle
	}

	inner := 0
	if m.width > 0 {
		inner = m.width - frame.GetHorizontalFrameSize()
		if inner < 1 {
			inner = 1
		}
		frame = frame.Width(m.width - frame.GetHorizontalBorderSize())
	}

	content := make([]string, 0, len(m.lines)+1)
	if m.title != "" {
		content = append(content, title.Render(m.title))
	}
	for _, line := range m.lines {
		if inner > 0 {
			line = truncate.StringWithTail(line, uint(inner), "…")
		}
		content = append(content, line)
	}
	view := frame.Render(strings.Join(content, "\n"))
	return view, strings.Count(view, "\n") + 1
}
