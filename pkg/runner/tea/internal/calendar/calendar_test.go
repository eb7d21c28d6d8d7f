package calendar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderWeekOrderAndShortcuts(t *testing.T) {
	days := []Day{
		{Label: "Lu", Number: 4},
		{Label: "Ma", Number: 5, IsSelected: true},
		{Label: "Me", Number: 6, IsToday: true},
	}
	plain := lipgloss.NewStyle()
	out := RenderWeek(days, Options{
		EmptyStyle:    plain,
		EntryStyle:    plain,
		TodayStyle:    plain,
		SelectedStyle: plain,
		ShowShortcut:  true,
	})
	want := " 1 Lu  4   2 Ma  5   3 Me  6 "
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRenderWeekNoNumber(t *testing.T) {
	out := RenderWeek([]Day{{Label: "Di"}}, Options{})
	if !strings.Contains(out, "Di") || strings.Contains(out, "0") {
		t.Fatalf("unexpected cell %q", out)
	}
}
