// Package sheet holds the editable on-screen state of one day: a fixed grid
// of schedule rows and two ordered task lists. Rendering fills the sheet from
// a day.Record; collecting reads it back.
//
// Mutations made through the row handles call the sheet's change trigger so
// the caller can schedule a save. Rendering never does.
package sheet

import (
	"fmt"
	"strings"

	"tableflip.dev/dayplan/pkg/day"
)

// DefaultMinTasks is the number of blank rows shown for an empty list.
const DefaultMinTasks = 5

// Sheet is the editable state of the day on screen.
type Sheet struct {
	Schedule []*ScheduleRow
	Todos    *TaskList
	Goals    *TaskList

	// MinTasks is the placeholder row count used by Render.
	MinTasks int

	onChange func()
}

// New returns a sheet with every hour row present and empty task lists.
// onChange may be nil.
func New(minTasks int, onChange func()) *Sheet {
	s := &Sheet{MinTasks: minTasks, onChange: onChange}
	s.Todos = &TaskList{sheet: s, Name: "todos"}
	s.Goals = &TaskList{sheet: s, Name: "goals"}
	s.RenderSchedule(nil)
	return s
}

// OnChange replaces the change trigger.
func (s *Sheet) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Sheet) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Render projects rec onto the sheet.
func (s *Sheet) Render(rec day.Record) {
	s.RenderSchedule(rec.Schedule)
	s.Todos.Render(rec.Todos, s.MinTasks)
	s.Goals.Render(rec.Goals, s.MinTasks)
}

// RenderSchedule rebuilds one row per configured hour, prefilled from
// schedule. Hours absent from schedule render blank; unknown keys are ignored.
func (s *Sheet) RenderSchedule(schedule map[string]string) {
	rows := make([]*ScheduleRow, len(day.Hours))
	for i, h := range day.Hours {
		rows[i] = &ScheduleRow{sheet: s, Hour: h, Text: schedule[h]}
	}
	s.Schedule = rows
}

// List returns the todo or goal list by name ("todo", "todos", "goal",
// "goals").
func (s *Sheet) List(name string) (*TaskList, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "todo", "todos":
		return s.Todos, nil
	case "goal", "goals":
		return s.Goals, nil
	}
	return nil, fmt.Errorf("sheet: unknown list %q, want todo or goal", name)
}

// Row returns the schedule row for hour, or nil.
func (s *Sheet) Row(hour string) *ScheduleRow {
	for _, r := range s.Schedule {
		if r.Hour == hour {
			return r
		}
	}
	return nil
}

// Collect reads the sheet into a record, keeping on-screen order and
// dropping blank slots and blank task rows.
func (s *Sheet) Collect() day.Record {
	rec := day.Empty()
	for _, r := range s.Schedule {
		if text := strings.TrimSpace(r.Text); text != "" {
			rec.Schedule[r.Hour] = text
		}
	}
	rec.Todos = s.Todos.collect()
	rec.Goals = s.Goals.collect()
	return rec
}

// Visible returns the part of rec a sheet can show: slots outside the hour
// grid and blank entries are dropped, as Render followed by Collect would.
func Visible(rec day.Record) day.Record {
	s := New(0, nil)
	s.Render(rec)
	return s.Collect()
}

// ScheduleRow is one hour slot.
type ScheduleRow struct {
	sheet *Sheet
	Hour  string
	Text  string
}

// SetText edits the slot and fires the change trigger.
func (r *ScheduleRow) SetText(text string) {
	r.Text = text
	r.sheet.changed()
}
