// Package printers renders days and weeks for the command line.
package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
)

type PrettyPrint struct {
	Out    io.Writer
	Locale daykey.Locale

	// Compact hides empty schedule slots.
	Compact bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(date time.Time) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprintf(pp.out(), "%s %s", daykey.Weekday(date, pp.Locale), daykey.Display(date, pp.Locale))
	_, _ = c.Fprintf(pp.out(), "  %s\n", daykey.Format(date))
}

func (pp *PrettyPrint) Heading(title string, done, total int) {
	t := color.New(color.Bold)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	if total > 0 {
		_, _ = c.Fprintf(pp.out(), " - %d/%d", done, total)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Day prints the full sheet of one date.
func (pp *PrettyPrint) Day(date time.Time, rec day.Record) {
	pp.Title(date)
	pp.NewLine()
	pp.Schedule(rec.Schedule)
	pp.NewLine()

	c := rec.Count()
	pp.Heading("Todos", c.TodosDone, c.Todos)
	pp.Tasks(rec.Todos)
	pp.NewLine()
	pp.Heading("Goals", c.GoalsDone, c.Goals)
	pp.Tasks(rec.Goals)
}

func (pp *PrettyPrint) Schedule(schedule map[string]string) {
	pp.Heading("Schedule", 0, 0)

	hour := color.New(color.FgHiYellow)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	shown := 0
	for _, h := range day.Hours {
		text, ok := schedule[h]
		if !ok {
			if pp.Compact {
				continue
			}
			tbl.AddRow(faint.Sprint(h), faint.Sprint("..."))
			continue
		}
		tbl.AddRow(hour.Sprint(h), text)
		shown++
	}
	if pp.Compact && shown == 0 {
		pp.none()
		return
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) Tasks(tasks []day.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	idx := color.New(color.Faint)
	done := color.New(color.Faint, color.CrossedOut)

	tbl := uitable.New()
	tbl.Separator = " "
	for i, t := range tasks {
		if t.Done {
			tbl.AddRow(idx.Sprintf("%d.", i+1), "[x]", done.Sprint(t.Text))
		} else {
			tbl.AddRow(idx.Sprintf("%d.", i+1), "[ ]", t.Text)
		}
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n")
}

// WeekDay is one row of a week listing.
type WeekDay struct {
	Date   time.Time
	Counts day.Counts
	Active bool
	Today  bool
}

// Week prints a Monday-first summary with one row per day.
func (pp *PrettyPrint) Week(days []WeekDay) {
	if len(days) == 0 {
		return
	}
	first, last := days[0].Date, days[len(days)-1].Date
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintf(pp.out(), "%s - %s\n", daykey.Display(first, pp.Locale), daykey.Display(last, pp.Locale))

	active := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.FgHiGreen)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range days {
		marker := " "
		switch {
		case d.Active:
			marker = ">"
		case d.Today:
			marker = "*"
		}
		name := daykey.Weekday(d.Date, pp.Locale)
		style := faint
		switch {
		case d.Active:
			style = active
		case d.Today:
			style = today
		case d.Counts != (day.Counts{}):
			style = color.New()
		}
		tbl.AddRow(marker, style.Sprint(name), daykey.Format(d.Date), summary(d.Counts))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func summary(c day.Counts) string {
	if c == (day.Counts{}) {
		return ""
	}
	parts := []string{}
	if c.Slots > 0 {
		parts = append(parts, fmt.Sprintf("%d slots", c.Slots))
	}
	if c.Todos > 0 {
		parts = append(parts, fmt.Sprintf("todos %d/%d", c.TodosDone, c.Todos))
	}
	if c.Goals > 0 {
		parts = append(parts, fmt.Sprintf("goals %d/%d", c.GoalsDone, c.Goals))
	}
	return strings.Join(parts, ", ")
}
