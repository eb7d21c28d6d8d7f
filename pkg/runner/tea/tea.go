// Package teaui is the interactive day sheet.
package teaui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tableflip.dev/dayplan/pkg/autosave"
	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/logging"
	"tableflip.dev/dayplan/pkg/sheet"
	"tableflip.dev/dayplan/pkg/store"
)

// UI runs the Bubble Tea program against an open store.
type UI struct {
	Store  *store.Store
	Config store.Config
	Locale daykey.Locale
	Logger *log.Logger
}

// Do blocks until the user quits. Edits are saved by an autosave loop that
// also re-saves on its interval; a final flush happens before returning.
func (u *UI) Do(ctx context.Context) error {
	if u.Store == nil {
		return errors.New("can not start ui, no store")
	}
	logger := u.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	interval, minTasks := autosave.DefaultInterval, sheet.DefaultMinTasks
	if u.Config != nil {
		interval, minTasks = u.Config.AutoSave(), u.Config.MinTasks()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := autosave.New(u.Store.Save, interval)
	loop.SetLogger(logger)

	events, err := u.Store.Watch(ctx)
	if err != nil {
		logger.Debug("not watching storage", "err", err)
		events = nil
	}

	m := New(Options{
		Persistence: u.Store,
		Saver:       loop,
		Events:      events,
		Locale:      u.Locale,
		MinTasks:    minTasks,
		Logger:      logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx))

	// Send blocks until the event loop reads it, and the event loop may
	// itself be waiting on a flush.
	loop.OnResult = func(res store.Result) {
		go p.Send(saveResultMsg{res: res})
	}

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	_, err = p.Run()
	cancel()
	<-done
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
