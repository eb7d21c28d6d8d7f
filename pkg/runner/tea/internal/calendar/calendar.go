// Package calendar renders the weekday shortcut bar.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Day describes a single day rendered in the bar.
type Day struct {
	Label      string
	Number     int
	HasEntry   bool
	IsToday    bool
	IsSelected bool
}

// Options controls bar styling.
type Options struct {
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style

	// ShowShortcut prefixes each day with its 1..7 key.
	ShowShortcut bool
}

// RenderWeek produces a single line with one cell per day, in order.
func RenderWeek(days []Day, opts Options) string {
	cells := make([]string, 0, len(days))
	for i, d := range days {
		cells = append(cells, renderDay(d, i, opts))
	}
	return strings.Join(cells, " ")
}

func renderDay(info Day, idx int, opts Options) string {
	text := info.Label
	if info.Number > 0 {
		text = fmt.Sprintf("%s %2d", text, info.Number)
	}
	if opts.ShowShortcut {
		text = fmt.Sprintf("%d %s", idx+1, text)
	}
	text = " " + text + " "

	style := opts.EmptyStyle
	if info.HasEntry {
		style = opts.EntryStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = opts.SelectedStyle.Inherit(style)
	}
	return style.Render(text)
}
