package remove

import (
	"bytes"
	"context"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/store"
)

func TestRemove(t *testing.T) {
	s := store.New(store.NewMemory())
	on := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	s.Save("2024-03-05", day.Record{Todos: []day.Task{{Text: "a"}, {Text: "b", Done: true}, {Text: "c"}}})

	r := &Remove{Persistence: s, On: on, List: "todos", Index: 2, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, _ := s.Load("2024-03-05")
	want := []day.Task{{Text: "a"}, {Text: "c"}}
	if !reflect.DeepEqual(rec.Todos, want) {
		t.Fatalf("expected %v, got %v", want, rec.Todos)
	}
}

func TestRemoveZeroIndex(t *testing.T) {
	s := store.New(store.NewMemory())
	s.Save("2024-03-05", day.Record{Todos: []day.Task{{Text: "a"}}})
	r := &Remove{Persistence: s, On: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local), List: "todo", Index: 0, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error for index 0")
	}
}
