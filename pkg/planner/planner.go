// Package planner moves the sheet between days. It holds no current date:
// callers pass the day they are leaving and get back the day they landed on.
package planner

import (
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/logging"
	"tableflip.dev/dayplan/pkg/sheet"
	"tableflip.dev/dayplan/pkg/store"
)

// Persistence is the subset of store.Store the planner needs.
type Persistence interface {
	Load(key string) (day.Record, store.Result)
	Save(key string, rec day.Record) store.Result
}

// Planner ties a sheet to a store.
type Planner struct {
	Store  Persistence
	Sheet  *sheet.Sheet
	Logger *log.Logger

	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// New returns a planner over p and sh.
func New(p Persistence, sh *sheet.Sheet) *Planner {
	return &Planner{Store: p, Sheet: sh, Logger: logging.Discard(), Now: time.Now}
}

func (p *Planner) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// Open loads date and renders it onto the sheet.
func (p *Planner) Open(date time.Time) store.Result {
	key := daykey.Format(date)
	rec, res := p.Store.Load(key)
	p.Sheet.Render(rec)
	p.Logger.Debug("opened day", "key", key, "ok", res.OK)
	return res
}

// Save collects the sheet and stores it under date.
func (p *Planner) Save(date time.Time) store.Result {
	return p.Store.Save(daykey.Format(date), p.Sheet.Collect())
}

// GoToDate saves the day being left, then opens to. The save always happens
// first, even when to is the same day. The returned Result is the save's;
// the load proceeds regardless.
func (p *Planner) GoToDate(from, to time.Time) (time.Time, store.Result) {
	res := p.Save(from)
	if !res.OK {
		p.Logger.Warn("leaving day with unsaved edits", "key", res.Key, "err", res.Err)
	}
	p.Open(to)
	return to, res
}

// GoToOffset moves by days calendar days.
func (p *Planner) GoToOffset(from time.Time, days int) (time.Time, store.Result) {
	return p.GoToDate(from, from.AddDate(0, 0, days))
}

// GoToWeekday moves to the day of from's week whose weekday is target
// (0 Sunday ... 6 Saturday). Weeks run Monday to Sunday, matching SameWeek,
// so Sunday is always the last day of the week and never the previous one.
// The web planner this replaces counted from Sunday, which sent a Monday
// to the Sunday before it; here a Monday goes to the Sunday six days on.
func (p *Planner) GoToWeekday(from time.Time, target time.Weekday) (time.Time, store.Result) {
	return p.GoToOffset(from, mondayIndex(target)-mondayIndex(from.Weekday()))
}

func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// GoToToday moves to the current day.
func (p *Planner) GoToToday(from time.Time) (time.Time, store.Result) {
	return p.GoToDate(from, p.now())
}

// DaySummary describes one day of a week view.
type DaySummary struct {
	Date   time.Time
	Key    string
	Counts day.Counts
	Active bool
	Today  bool
}

// Week summarises the Monday-first week containing date. Today is only
// marked when it falls in that week.
func (p *Planner) Week(date time.Time) []DaySummary {
	today := p.now()
	sameWeek := daykey.SameWeek(date, today)

	days := daykey.WeekDays(date)
	out := make([]DaySummary, 0, len(days))
	for _, d := range days {
		key := daykey.Format(d)
		rec, _ := p.Store.Load(key)
		out = append(out, DaySummary{
			Date:   d,
			Key:    key,
			Counts: rec.Count(),
			Active: daykey.SameDay(d, date),
			Today:  sameWeek && d.Weekday() == today.Weekday(),
		})
	}
	return out
}

// Edit opens date, applies fn to the sheet and saves. fn errors abort
// without saving.
func (p *Planner) Edit(date time.Time, fn func(*sheet.Sheet) error) (day.Record, store.Result, error) {
	p.Open(date)
	if err := fn(p.Sheet); err != nil {
		return day.Record{}, store.Result{}, err
	}
	res := p.Save(date)
	return p.Sheet.Collect(), res, nil
}
