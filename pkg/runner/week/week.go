// Package week prints a Monday-first summary of the week around a date.
package week

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/sheet"
)

type Week struct {
	Persistence planner.Persistence
	On          time.Time
	Now         func() time.Time
	Locale      daykey.Locale
	Out         io.Writer
}

func (w *Week) Do(_ context.Context) error {
	if w.Persistence == nil {
		return errors.New("can not show week, no persistence")
	}
	p := planner.New(w.Persistence, sheet.New(0, nil))
	if w.Now != nil {
		p.Now = w.Now
	}

	summaries := p.Week(w.On)
	days := make([]printers.WeekDay, 0, len(summaries))
	for _, s := range summaries {
		days = append(days, printers.WeekDay{
			Date:   s.Date,
			Counts: s.Counts,
			Active: s.Active,
			Today:  s.Today,
		})
	}

	pp := printers.PrettyPrint{Out: w.Out, Locale: w.Locale}
	pp.Week(days)
	return nil
}
