package teaui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/store"
)

func TestViewRendersDay(t *testing.T) {
	s := store.New(store.NewMemory())
	s.Save("2024-03-06", day.Record{
		Schedule: map[string]string{"09H00": "Standup"},
		Todos:    []day.Task{{Text: "Buy milk", Done: true}},
	})
	m := newTestModel(t, s, nil)
	m = press(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := stripANSI(m.View())
	for _, want := range []string{
		"Wednesday 6 March 2024", "2024-03-06",
		"3 We  6",
		"» Schedule", "→ 06H00", "09H00 Standup", "21H00",
		"  Todos", "[x] Buy milk", "  Goals", "(a to add)",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewFocusMovesWithTab(t *testing.T) {
	m := newTestModel(t, store.New(store.NewMemory()), nil)
	m = press(m, keyOf(tea.KeyTab))

	view := stripANSI(m.View())
	if !strings.Contains(view, "» Todos") || strings.Contains(view, "» Schedule") {
		t.Fatalf("expected todos focused:\n%s", view)
	}
}

func TestViewHelpAndCommandModes(t *testing.T) {
	m := newTestModel(t, store.New(store.NewMemory()), nil)

	m = press(m, runes("?"))
	if view := stripANSI(m.View()); !strings.Contains(view, "go to date") {
		t.Fatalf("expected full help:\n%s", view)
	}
	m = press(m, runes("?"))

	m = press(m, runes(":"))
	view := stripANSI(m.View())
	if !strings.Contains(view, ":today") || !strings.Contains(view, ":quit") {
		t.Fatalf("expected command suggestions:\n%s", view)
	}
}
