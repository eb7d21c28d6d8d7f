package planner

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/sheet"
	"tableflip.dev/dayplan/pkg/store"
)

// recordingStore wraps a real store and records the order of calls.
type recordingStore struct {
	*store.Store
	calls []string
}

func (r *recordingStore) Load(key string) (day.Record, store.Result) {
	r.calls = append(r.calls, "load "+key)
	return r.Store.Load(key)
}

func (r *recordingStore) Save(key string, rec day.Record) store.Result {
	r.calls = append(r.calls, "save "+key)
	return r.Store.Save(key, rec)
}

func newTestPlanner(t *testing.T) (*Planner, *recordingStore, *store.MemoryBackend) {
	t.Helper()
	mem := store.NewMemory()
	rs := &recordingStore{Store: store.New(mem)}
	p := New(rs, sheet.New(sheet.DefaultMinTasks, nil))
	p.Now = func() time.Time { return time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC) }
	return p, rs, mem
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestGoToOffsetSavesBeforeSwitching(t *testing.T) {
	p, rs, _ := newTestPlanner(t)
	cur := date(2024, time.March, 5)
	p.Open(cur)
	p.Sheet.Row("09H00").SetText("Standup")
	rs.calls = nil

	next, res := p.GoToOffset(cur, -1)
	if !res.OK {
		t.Fatalf("save: %v", res.AsError())
	}
	if daykey.Format(next) != "2024-03-04" {
		t.Fatalf("expected 2024-03-04, got %s", daykey.Format(next))
	}
	want := []string{"save 2024-03-05", "load 2024-03-04"}
	if !reflect.DeepEqual(rs.calls, want) {
		t.Fatalf("expected %v, got %v", want, rs.calls)
	}

	saved, _ := rs.Store.Load("2024-03-05")
	if saved.Schedule["09H00"] != "Standup" {
		t.Fatalf("expected edits saved, got %#v", saved)
	}
	if p.Sheet.Row("09H00").Text != "" {
		t.Fatalf("expected new day rendered blank")
	}
}

func TestGoToOffsetCrossesYear(t *testing.T) {
	p, _, _ := newTestPlanner(t)
	next, _ := p.GoToOffset(date(2024, time.December, 31), 1)
	if daykey.Format(next) != "2025-01-01" {
		t.Fatalf("expected 2025-01-01, got %s", daykey.Format(next))
	}
	prev, _ := p.GoToOffset(date(2024, time.March, 1), -1)
	if daykey.Format(prev) != "2024-02-29" {
		t.Fatalf("expected leap day, got %s", daykey.Format(prev))
	}
}

func TestGoToWeekday(t *testing.T) {
	p, _, _ := newTestPlanner(t)
	tuesday := date(2024, time.March, 5)

	cases := map[time.Weekday]string{
		time.Monday:   "2024-03-04",
		time.Tuesday:  "2024-03-05",
		time.Friday:   "2024-03-08",
		time.Saturday: "2024-03-09",
		time.Sunday:   "2024-03-10",
	}
	for wd, want := range cases {
		got, _ := p.GoToWeekday(tuesday, wd)
		if daykey.Format(got) != want {
			t.Fatalf("%v: expected %s, got %s", wd, want, daykey.Format(got))
		}
	}

	sunday := date(2024, time.March, 10)
	got, _ := p.GoToWeekday(sunday, time.Monday)
	if daykey.Format(got) != "2024-03-04" {
		t.Fatalf("from sunday expected monday 03-04, got %s", daykey.Format(got))
	}

	monday := date(2024, time.March, 4)
	got, _ = p.GoToWeekday(monday, time.Sunday)
	if daykey.Format(got) != "2024-03-10" {
		t.Fatalf("from monday expected the following sunday 03-10, got %s", daykey.Format(got))
	}
}

func TestGoToWeekdaySameDayStillSaves(t *testing.T) {
	p, rs, _ := newTestPlanner(t)
	cur := date(2024, time.March, 5)
	p.Open(cur)
	rs.calls = nil

	got, _ := p.GoToWeekday(cur, time.Tuesday)
	if !daykey.SameDay(got, cur) {
		t.Fatalf("expected same day, got %v", got)
	}
	if len(rs.calls) == 0 || rs.calls[0] != "save 2024-03-05" {
		t.Fatalf("expected a save first, got %v", rs.calls)
	}
}

func TestGoToToday(t *testing.T) {
	p, _, _ := newTestPlanner(t)
	got, _ := p.GoToToday(date(2020, time.January, 1))
	if daykey.Format(got) != "2024-03-07" {
		t.Fatalf("expected today, got %s", daykey.Format(got))
	}
}

func TestGoToDateSaveFailureStillMoves(t *testing.T) {
	p, _, mem := newTestPlanner(t)
	mem.PutErr = errors.New("quota exceeded")

	got, res := p.GoToOffset(date(2024, time.March, 5), 1)
	if res.OK {
		t.Fatalf("expected failed save result")
	}
	if daykey.Format(got) != "2024-03-06" {
		t.Fatalf("expected navigation to proceed, got %s", daykey.Format(got))
	}
}

func TestExampleScenario(t *testing.T) {
	p, rs, _ := newTestPlanner(t)
	cur := date(2024, time.March, 5)

	if res := p.Open(cur); !res.OK {
		t.Fatalf("open: %v", res.AsError())
	}
	if got := p.Sheet.Collect(); !reflect.DeepEqual(got, day.Empty()) {
		t.Fatalf("expected empty record, got %#v", got)
	}

	p.Sheet.Row("09H00").SetText("Standup")
	p.Sheet.Todos.At(0).SetText("Buy milk")
	want := day.Record{
		Schedule: map[string]string{"09H00": "Standup"},
		Todos:    []day.Task{{Text: "Buy milk"}},
		Goals:    []day.Task{},
	}
	if got := p.Sheet.Collect(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
	if res := p.Save(cur); !res.OK {
		t.Fatalf("save: %v", res.AsError())
	}
	got, _ := rs.Store.Load("2024-03-05")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestWeek(t *testing.T) {
	p, rs, _ := newTestPlanner(t)
	rs.Store.Save("2024-03-06", day.Record{Todos: []day.Task{{Text: "a", Done: true}}})

	week := p.Week(date(2024, time.March, 5))
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if week[0].Key != "2024-03-04" || week[6].Key != "2024-03-10" {
		t.Fatalf("unexpected range %s..%s", week[0].Key, week[6].Key)
	}
	if !week[1].Active || week[0].Active {
		t.Fatalf("expected tuesday active")
	}
	if !week[3].Today {
		t.Fatalf("expected thursday marked today")
	}
	if week[2].Counts.TodosDone != 1 {
		t.Fatalf("expected counts for wednesday, got %+v", week[2].Counts)
	}

	other := p.Week(date(2024, time.April, 2))
	for _, d := range other {
		if d.Today {
			t.Fatalf("today must not be marked outside its week")
		}
	}
}

func TestEdit(t *testing.T) {
	p, rs, _ := newTestPlanner(t)
	on := date(2024, time.March, 5)

	rec, res, err := p.Edit(on, func(s *sheet.Sheet) error {
		s.Goals.Add(day.Task{Text: "Ship it"})
		return nil
	})
	if err != nil || !res.OK {
		t.Fatalf("edit: %v %v", err, res.AsError())
	}
	if len(rec.Goals) != 1 {
		t.Fatalf("expected returned record to include goal, got %#v", rec)
	}

	rs.calls = nil
	_, _, err = p.Edit(on, func(*sheet.Sheet) error { return errors.New("bad input") })
	if err == nil {
		t.Fatalf("expected fn error")
	}
	for _, c := range rs.calls {
		if c == "save 2024-03-05" {
			t.Fatalf("failed edit must not save")
		}
	}
}
