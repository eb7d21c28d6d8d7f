// Package show prints a single day.
package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/printers"
)

// Show prints the record stored for On.
type Show struct {
	Persistence planner.Persistence
	On          time.Time
	Locale      daykey.Locale
	JSON        bool
	Compact     bool
	Out         io.Writer
}

type dayJSON struct {
	Key     string     `json:"key"`
	Weekday string     `json:"weekday"`
	Date    string     `json:"date"`
	Record  day.Record `json:"record"`
}

// Do loads and prints the day. A degraded load still prints the empty day
// and returns the load error.
func (s *Show) Do(_ context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not show, no persistence")
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}

	key := daykey.Format(s.On)
	rec, res := s.Persistence.Load(key)

	if s.JSON {
		b, err := json.MarshalIndent(dayJSON{
			Key:     key,
			Weekday: daykey.Weekday(s.On, s.Locale),
			Date:    daykey.Display(s.On, s.Locale),
			Record:  rec,
		}, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
	} else {
		pp := printers.PrettyPrint{Out: out, Locale: s.Locale, Compact: s.Compact}
		pp.Day(s.On, rec)
	}
	return res.AsError()
}
