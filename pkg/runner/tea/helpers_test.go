package teaui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/store"
)

// Wednesday.
var testNow = time.Date(2024, time.March, 6, 10, 30, 0, 0, time.Local)

func newTestModel(t *testing.T, s *store.Store, saver Saver) Model {
	t.Helper()
	return New(Options{
		Persistence: s,
		Saver:       saver,
		Locale:      daykey.English,
		MinTasks:    0,
		Now:         func() time.Time { return testNow },
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// typeText sends one key message per rune, like a terminal would.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func mustLoad(t *testing.T, s *store.Store, key string) day.Record {
	t.Helper()
	rec, res := s.Load(key)
	if !res.OK {
		t.Fatalf("load %s: %v", key, res.Err)
	}
	return rec
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if isQuit(c) {
				return true
			}
		}
	}
	return false
}

type fakeSaver struct {
	keys    []string
	recs    []day.Record
	flushes int
}

func (f *fakeSaver) Submit(key string, rec day.Record) {
	f.keys = append(f.keys, key)
	f.recs = append(f.recs, rec)
}

func (f *fakeSaver) Flush() []store.Result {
	f.flushes++
	return nil
}
