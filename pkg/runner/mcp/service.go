// Package mcp exposes the planner over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/sheet"
	"tableflip.dev/dayplan/pkg/store"
)

// Service runs planner operations on behalf of MCP handlers. Handlers may
// run concurrently, so every edit is serialised on mu.
type Service struct {
	Persistence planner.Persistence
	Locale      daykey.Locale
	Now         func() time.Time

	mu sync.Mutex
}

// ErrNoTask is returned when a task index does not match a stored task.
var ErrNoTask = errors.New("task not found")

// DayDTO is a transport-friendly projection of one day.
type DayDTO struct {
	Key     string         `json:"key"`
	Weekday string         `json:"weekday"`
	Date    string         `json:"date"`
	Today   bool           `json:"today"`
	Record  day.Record     `json:"record"`
	Counts  map[string]int `json:"counts"`
}

// WeekDayDTO summarises one day of a week.
type WeekDayDTO struct {
	Key       string `json:"key"`
	Weekday   string `json:"weekday"`
	Today     bool   `json:"today"`
	Selected  bool   `json:"selected"`
	Slots     int    `json:"slots"`
	Todos     int    `json:"todos"`
	TodosDone int    `json:"todosDone"`
	Goals     int    `json:"goals"`
	GoalsDone int    `json:"goalsDone"`
}

type keyLister interface {
	Keys() ([]string, store.Result)
}

// NewService builds a service over p.
func NewService(p planner.Persistence, locale daykey.Locale) *Service {
	return &Service{Persistence: p, Locale: locale, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// ResolveDate accepts a YYYY-MM-DD key, "today", "tomorrow", "yesterday" or
// an empty string meaning today.
func (s *Service) ResolveDate(in string) (time.Time, error) {
	now := s.now()
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "", "today":
		return daykey.Midnight(now), nil
	case "tomorrow":
		return daykey.Midnight(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return daykey.Midnight(now).AddDate(0, 0, -1), nil
	}
	return daykey.Parse(strings.TrimSpace(in), now.Location())
}

func (s *Service) planner() (*planner.Planner, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}
	p := planner.New(s.Persistence, sheet.New(0, nil))
	p.Now = s.now
	return p, nil
}

func (s *Service) toDTO(date time.Time, rec day.Record) DayDTO {
	c := rec.Count()
	return DayDTO{
		Key:     daykey.Format(date),
		Weekday: daykey.Weekday(date, s.Locale),
		Date:    daykey.Display(date, s.Locale),
		Today:   daykey.SameDay(date, s.now()),
		Record:  rec,
		Counts: map[string]int{
			"slots":     c.Slots,
			"todos":     c.Todos,
			"todosDone": c.TodosDone,
			"goals":     c.Goals,
			"goalsDone": c.GoalsDone,
		},
	}
}

// Day loads the record for date.
func (s *Service) Day(ctx context.Context, date string) (DayDTO, error) {
	when, err := s.ResolveDate(date)
	if err != nil {
		return DayDTO{}, err
	}
	if s.Persistence == nil {
		return DayDTO{}, errors.New("persistence is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, res := s.Persistence.Load(daykey.Format(when))
	if err := res.AsError(); err != nil {
		return DayDTO{}, err
	}
	return s.toDTO(when, rec), nil
}

func (s *Service) edit(date string, fn func(*sheet.Sheet) error) (DayDTO, error) {
	when, err := s.ResolveDate(date)
	if err != nil {
		return DayDTO{}, err
	}
	p, err := s.planner()
	if err != nil {
		return DayDTO{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, res, err := p.Edit(when, fn)
	if err != nil {
		return DayDTO{}, err
	}
	if err := res.AsError(); err != nil {
		return DayDTO{}, err
	}
	return s.toDTO(when, rec), nil
}

// SetSlot replaces the text of one hour. Empty text clears it.
func (s *Service) SetSlot(_ context.Context, date, hour, text string) (DayDTO, error) {
	label, err := day.HourLabel(hour)
	if err != nil {
		return DayDTO{}, err
	}
	return s.edit(date, func(sh *sheet.Sheet) error {
		sh.Row(label).SetText(text)
		return nil
	})
}

// AddTask appends a task to the todo or goal list.
func (s *Service) AddTask(_ context.Context, date, list, text string, done bool) (DayDTO, error) {
	if strings.TrimSpace(text) == "" {
		return DayDTO{}, errors.New("task text is required")
	}
	return s.edit(date, func(sh *sheet.Sheet) error {
		l, err := sh.List(list)
		if err != nil {
			return err
		}
		l.Add(day.Task{Text: text, Done: done})
		return nil
	})
}

// SetTaskDone sets the done flag of the index-th (1-based) task.
func (s *Service) SetTaskDone(_ context.Context, date, list string, index int, done bool) (DayDTO, error) {
	return s.edit(date, func(sh *sheet.Sheet) error {
		row, err := taskRow(sh, list, index)
		if err != nil {
			return err
		}
		row.SetDone(done)
		return nil
	})
}

// RemoveTask deletes the index-th (1-based) task.
func (s *Service) RemoveTask(_ context.Context, date, list string, index int) (DayDTO, error) {
	return s.edit(date, func(sh *sheet.Sheet) error {
		row, err := taskRow(sh, list, index)
		if err != nil {
			return err
		}
		row.Remove()
		return nil
	})
}

func taskRow(sh *sheet.Sheet, list string, index int) (*sheet.TaskRow, error) {
	l, err := sh.List(list)
	if err != nil {
		return nil, err
	}
	row := l.FilledRow(index - 1)
	if row == nil {
		return nil, fmt.Errorf("%w: %s #%d", ErrNoTask, l.Name, index)
	}
	return row, nil
}

// Week summarises the Monday-first week containing date.
func (s *Service) Week(_ context.Context, date string) ([]WeekDayDTO, error) {
	when, err := s.ResolveDate(date)
	if err != nil {
		return nil, err
	}
	p, err := s.planner()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	days := p.Week(when)
	out := make([]WeekDayDTO, 0, len(days))
	for _, d := range days {
		out = append(out, WeekDayDTO{
			Key:       d.Key,
			Weekday:   daykey.Weekday(d.Date, s.Locale),
			Today:     d.Today,
			Selected:  d.Active,
			Slots:     d.Counts.Slots,
			Todos:     d.Counts.Todos,
			TodosDone: d.Counts.TodosDone,
			Goals:     d.Counts.Goals,
			GoalsDone: d.Counts.GoalsDone,
		})
	}
	return out, nil
}

// Days lists every stored day key, oldest first. Stores that cannot
// enumerate keys return an empty list.
func (s *Service) Days(_ context.Context) ([]string, error) {
	kl, ok := s.Persistence.(keyLister)
	if !ok {
		return []string{}, nil
	}
	found, res := kl.Keys()
	if !res.OK {
		return nil, res.AsError()
	}
	keys := append([]string{}, found...)
	sort.Strings(keys)
	return keys, nil
}
