package sheet

import (
	"strings"

	"tableflip.dev/dayplan/pkg/day"
)

// TaskList is an ordered list of task rows.
type TaskList struct {
	sheet *Sheet
	Name  string
	rows  []*TaskRow
}

// Rows returns the rows in display order.
func (l *TaskList) Rows() []*TaskRow {
	return l.rows
}

// Len returns the number of rows, blank ones included.
func (l *TaskList) Len() int {
	return len(l.rows)
}

// At returns the row at i, or nil when out of range.
func (l *TaskList) At(i int) *TaskRow {
	if i < 0 || i >= len(l.rows) {
		return nil
	}
	return l.rows[i]
}

// Render replaces the rows with items. An empty items list renders minCount
// blank rows so there is always somewhere to type.
func (l *TaskList) Render(items []day.Task, minCount int) {
	if len(items) == 0 {
		items = make([]day.Task, minCount)
	}
	l.rows = make([]*TaskRow, 0, len(items))
	for _, it := range items {
		l.rows = append(l.rows, &TaskRow{list: l, Text: it.Text, Done: it.Done})
	}
}

// Add appends a row for item and returns it so the caller can focus it.
// Adding fires the change trigger.
func (l *TaskList) Add(item day.Task) *TaskRow {
	row := &TaskRow{list: l, Text: item.Text, Done: item.Done}
	l.rows = append(l.rows, row)
	l.sheet.changed()
	return row
}

// Remove deletes the row at i. It reports false when i is out of range.
func (l *TaskList) Remove(i int) bool {
	if i < 0 || i >= len(l.rows) {
		return false
	}
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
	l.sheet.changed()
	return true
}

// Index returns the position of row, or -1.
func (l *TaskList) Index(row *TaskRow) int {
	for i, r := range l.rows {
		if r == row {
			return i
		}
	}
	return -1
}

// Filled returns the index among non-blank rows for the row at i, the
// position a persisted task has after collect. -1 for blank rows.
func (l *TaskList) Filled(i int) int {
	if r := l.At(i); r == nil || r.blank() {
		return -1
	}
	n := 0
	for _, r := range l.rows[:i] {
		if !r.blank() {
			n++
		}
	}
	return n
}

// FilledRow returns the n-th non-blank row, matching a persisted task index.
func (l *TaskList) FilledRow(n int) *TaskRow {
	if n < 0 {
		return nil
	}
	for _, r := range l.rows {
		if r.blank() {
			continue
		}
		if n == 0 {
			return r
		}
		n--
	}
	return nil
}

// Tasks returns the non-blank rows as trimmed tasks, in order.
func (l *TaskList) Tasks() []day.Task {
	return l.collect()
}

func (l *TaskList) collect() []day.Task {
	out := make([]day.Task, 0, len(l.rows))
	for _, r := range l.rows {
		if text := strings.TrimSpace(r.Text); text != "" {
			out = append(out, day.Task{Text: text, Done: r.Done})
		}
	}
	return out
}

// TaskRow is one checkbox and text pair.
type TaskRow struct {
	list *TaskList
	Text string
	Done bool
}

// SetText edits the row text.
func (r *TaskRow) SetText(text string) {
	r.Text = text
	r.list.sheet.changed()
}

// SetDone sets the checkbox.
func (r *TaskRow) SetDone(done bool) {
	r.Done = done
	r.list.sheet.changed()
}

// Toggle flips the checkbox.
func (r *TaskRow) Toggle() {
	r.SetDone(!r.Done)
}

// Remove deletes the row from its list.
func (r *TaskRow) Remove() bool {
	return r.list.Remove(r.list.Index(r))
}

func (r *TaskRow) blank() bool {
	return strings.TrimSpace(r.Text) == ""
}
