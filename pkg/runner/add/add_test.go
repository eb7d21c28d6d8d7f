package add

import (
	"bytes"
	"context"
	"reflect"
	"strings"
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

func TestAddAppends(t *testing.T) {
	s := store.New(store.NewMemory())
	on := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	s.Save("2024-03-05", day.Record{Goals: []day.Task{{Text: "Ship"}}})

	var buf bytes.Buffer
	r := &Add{Persistence: s, On: on, List: "goal", Message: "Rest", Locale: daykey.English, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, _ := s.Load("2024-03-05")
	want := []day.Task{{Text: "Ship"}, {Text: "Rest"}}
	if !reflect.DeepEqual(rec.Goals, want) {
		t.Fatalf("expected %v, got %v", want, rec.Goals)
	}
	if !strings.Contains(buf.String(), "2. [ ] Rest") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestAddRejectsBlank(t *testing.T) {
	m := store.NewMemory()
	r := &Add{Persistence: store.New(m), On: time.Now(), List: "todo", Message: "  ", Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error for blank task")
	}
	if m.Puts() != 0 {
		t.Fatalf("nothing should be written")
	}
}

func TestAddUnknownList(t *testing.T) {
	r := &Add{Persistence: store.New(store.NewMemory()), On: time.Now(), List: "notes", Message: "x", Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error for unknown list")
	}
}
