// Package day defines the per-date planner record and the persisted document.
package day

import (
	"fmt"
	"strconv"
	"strings"
)

// Hours lists the schedule slots in display order. These are the only keys
// ever written to Record.Schedule.
var Hours = []string{
	"06H00", "07H00", "08H00", "09H00", "10H00", "11H00",
	"12H00", "13H00", "14H00", "15H00", "16H00", "17H00",
	"18H00", "19H00", "20H00", "21H00",
}

// IsHour reports whether label is one of Hours.
func IsHour(label string) bool {
	for _, h := range Hours {
		if h == label {
			return true
		}
	}
	return false
}

// HourLabel normalises user input such as "9", "9h", "09:00" or "09H00" to
// a label from Hours.
func HourLabel(s string) (string, error) {
	in := strings.ToUpper(strings.TrimSpace(s))
	in = strings.TrimSuffix(in, "H00")
	in = strings.TrimSuffix(in, ":00")
	in = strings.TrimSuffix(in, "H")
	n, err := strconv.Atoi(in)
	if err != nil {
		return "", fmt.Errorf("day: invalid hour %q", s)
	}
	label := fmt.Sprintf("%02dH00", n)
	if !IsHour(label) {
		return "", fmt.Errorf("day: hour %q outside %s-%s", s, Hours[0], Hours[len(Hours)-1])
	}
	return label, nil
}

// Task is a checkbox entry shared by the todo and goal lists. Identity is
// its position in the list.
type Task struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Record is everything planned for one calendar day.
type Record struct {
	Schedule map[string]string `json:"schedule"`
	Todos    []Task            `json:"todos"`
	Goals    []Task            `json:"goals"`
}

// Document maps day keys to records. It is persisted as a single unit.
type Document map[string]Record

// Empty returns a fresh record with a non-nil schedule and task lists.
func Empty() Record {
	return Record{
		Schedule: map[string]string{},
		Todos:    []Task{},
		Goals:    []Task{},
	}
}

// IsEmpty reports whether the record holds nothing worth showing.
func (r Record) IsEmpty() bool {
	return len(r.Schedule) == 0 && len(r.Todos) == 0 && len(r.Goals) == 0
}

// Normalize trims every value and drops blank schedule slots and blank
// tasks. Nil collections become empty ones. The receiver is not modified.
func (r Record) Normalize() Record {
	out := Empty()
	for hour, text := range r.Schedule {
		if text = strings.TrimSpace(text); text != "" {
			out.Schedule[hour] = text
		}
	}
	out.Todos = normalizeTasks(r.Todos)
	out.Goals = normalizeTasks(r.Goals)
	return out
}

func normalizeTasks(in []Task) []Task {
	out := make([]Task, 0, len(in))
	for _, t := range in {
		if text := strings.TrimSpace(t.Text); text != "" {
			out = append(out, Task{Text: text, Done: t.Done})
		}
	}
	return out
}

// Repair fills nil collections left by a decoded document so callers never
// see a nil map or slice.
func (r Record) Repair() Record {
	if r.Schedule == nil {
		r.Schedule = map[string]string{}
	}
	if r.Todos == nil {
		r.Todos = []Task{}
	}
	if r.Goals == nil {
		r.Goals = []Task{}
	}
	return r
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := Record{
		Schedule: make(map[string]string, len(r.Schedule)),
		Todos:    append([]Task{}, r.Todos...),
		Goals:    append([]Task{}, r.Goals...),
	}
	for k, v := range r.Schedule {
		out.Schedule[k] = v
	}
	return out
}

// Counts summarises a record for week views.
type Counts struct {
	Slots     int
	Todos     int
	TodosDone int
	Goals     int
	GoalsDone int
}

// Count tallies r.
func (r Record) Count() Counts {
	c := Counts{Slots: len(r.Schedule), Todos: len(r.Todos), Goals: len(r.Goals)}
	for _, t := range r.Todos {
		if t.Done {
			c.TodosDone++
		}
	}
	for _, t := range r.Goals {
		if t.Done {
			c.GoalsDone++
		}
	}
	return c
}
