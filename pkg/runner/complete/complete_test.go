package complete

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestCompleteAndUndo(t *testing.T) {
	s := store.New(store.NewMemory())
	on := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	s.Save("2024-03-05", day.Record{Todos: []day.Task{{Text: "a"}, {Text: "b"}}})

	r := &Complete{Persistence: s, On: on, List: "todo", Index: 2, Locale: daykey.English, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, _ := s.Load("2024-03-05")
	if rec.Todos[0].Done || !rec.Todos[1].Done {
		t.Fatalf("expected only b done, got %v", rec.Todos)
	}

	r.Undo = true
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, _ = s.Load("2024-03-05")
	if rec.Todos[1].Done {
		t.Fatalf("expected b reopened, got %v", rec.Todos)
	}
}

func TestCompleteMissingIndex(t *testing.T) {
	m := store.NewMemory()
	r := &Complete{Persistence: store.New(m), On: time.Now(), List: "goal", Index: 1, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error for missing task")
	}
	if m.Puts() != 0 {
		t.Fatalf("nothing should be written")
	}
}
