package commands

import (
	"github.com/charmbracelet/log"

	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/logging"
	"tableflip.dev/dayplan/pkg/store"
)

// session is what every command needs to touch the planner document.
type session struct {
	Store  *store.Store
	Config store.Config
	Locale daykey.Locale
	Logger *log.Logger
}

func (s *session) Close() {
	if err := s.Store.Close(); err != nil {
		s.Logger.Warn("closing store", "err", err)
	}
}

func openSession() (*session, error) {
	logger := logging.FromEnv(lo.Verbose)
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	s, err := store.Open(cfg, store.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", "backend", cfg.Backend(), "path", cfg.BasePath())
	return &session{
		Store:  s,
		Config: cfg,
		Locale: daykey.LocaleFor(cfg.Locale()),
		Logger: logger,
	}, nil
}
