// Package set writes one schedule slot.
package set

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/sheet"
)

// Set replaces the text of one hour. An empty Text clears the slot.
type Set struct {
	Persistence planner.Persistence
	On          time.Time
	Hour        string
	Text        string
	Locale      daykey.Locale
	Out         io.Writer
}

func (s *Set) Do(_ context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not set, no persistence")
	}
	hour, err := day.HourLabel(s.Hour)
	if err != nil {
		return err
	}

	p := planner.New(s.Persistence, sheet.New(0, nil))
	rec, res, err := p.Edit(s.On, func(sh *sheet.Sheet) error {
		sh.Row(hour).SetText(s.Text)
		return nil
	})
	if err != nil {
		return err
	}
	if err := res.AsError(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: s.Out, Locale: s.Locale, Compact: true}
	pp.Title(s.On)
	pp.Schedule(rec.Schedule)
	return nil
}
