// Package add appends a todo or a goal to a day.
package add

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/sheet"
)

type Add struct {
	Persistence planner.Persistence
	On          time.Time
	List        string
	Message     string
	Done        bool
	Locale      daykey.Locale
	Out         io.Writer
}

func (n *Add) Do(_ context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if strings.TrimSpace(n.Message) == "" {
		return errors.New("requires some text")
	}

	var list *sheet.TaskList
	p := planner.New(n.Persistence, sheet.New(0, nil))
	_, res, err := p.Edit(n.On, func(sh *sheet.Sheet) error {
		l, err := sh.List(n.List)
		if err != nil {
			return err
		}
		l.Add(day.Task{Text: n.Message, Done: n.Done})
		list = l
		return nil
	})
	if err != nil {
		return err
	}
	if err := res.AsError(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, Locale: n.Locale}
	pp.Title(n.On)
	pp.Tasks(list.Tasks())
	return nil
}
