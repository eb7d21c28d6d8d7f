// Package complete provides the runner logic for checking off tasks.
package complete

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/sheet"
)

// Complete sets the done flag of a task. Index is 1-based, as printed by
// show.
type Complete struct {
	Persistence planner.Persistence
	On          time.Time
	List        string
	Index       int
	Undo        bool
	Locale      daykey.Locale
	Out         io.Writer
}

// Do executes the completion for the configured task.
func (n *Complete) Do(_ context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	var list *sheet.TaskList
	p := planner.New(n.Persistence, sheet.New(0, nil))
	_, res, err := p.Edit(n.On, func(sh *sheet.Sheet) error {
		l, err := sh.List(n.List)
		if err != nil {
			return err
		}
		row := l.FilledRow(n.Index - 1)
		if row == nil {
			return fmt.Errorf("no %s #%d on %s", l.Name, n.Index, daykey.Format(n.On))
		}
		row.SetDone(!n.Undo)
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
