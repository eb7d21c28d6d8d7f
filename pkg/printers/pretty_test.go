package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
)

func init() {
	color.NoColor = true
}

func TestDay(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Locale: daykey.French}

	pp.Day(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), day.Record{
		Schedule: map[string]string{"09H00": "Standup"},
		Todos:    []day.Task{{Text: "Buy milk"}, {Text: "Call mom", Done: true}},
	})

	out := buf.String()
	for _, want := range []string{"Mardi 5 mars 2024", "2024-03-05", "09H00", "Standup", "06H00", "[ ] Buy milk", "[x] Call mom", "Todos - 1/2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "none") {
		t.Fatalf("expected empty goals marker:\n%s", out)
	}
}

func TestScheduleCompact(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Locale: daykey.English, Compact: true}
	pp.Schedule(map[string]string{"10H00": "Review"})

	out := buf.String()
	if strings.Contains(out, "06H00") {
		t.Fatalf("compact output must hide empty slots:\n%s", out)
	}
	if !strings.Contains(out, "Review") {
		t.Fatalf("expected slot text:\n%s", out)
	}
}

func TestWeek(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Locale: daykey.English}

	days := make([]WeekDay, 0, 7)
	for _, d := range daykey.WeekDays(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)) {
		wd := WeekDay{Date: d}
		if d.Day() == 5 {
			wd.Active = true
			wd.Counts = day.Counts{Todos: 2, TodosDone: 1}
		}
		days = append(days, wd)
	}
	pp.Week(days)

	out := buf.String()
	for _, want := range []string{"4 March 2024 - 10 March 2024", ">  Tuesday", "todos 1/2", "Sunday"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
