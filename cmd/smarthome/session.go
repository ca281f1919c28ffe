package main

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/angristan/smarthome-tui/internal/config"
	"github.com/angristan/smarthome-tui/internal/home"
	"github.com/angristan/smarthome-tui/internal/logging"
	"github.com/angristan/smarthome-tui/internal/models"
	"github.com/angristan/smarthome-tui/internal/store"
)

// session is everything a command needs to read or change the home
type session struct {
	cfg   *config.Config
	log   logr.Logger
	store *store.Store
	home  *home.Home

	logCloser io.Closer
}

// loadConfig reads the configuration file and applies the flag overrides
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.backend != "" && opts.backend != cfg.Storage.Backend {
		cfg.Storage.Backend = opts.backend
		if err := cfg.SetDefaultStoragePath(); err != nil {
			return nil, err
		}
	}
	if opts.ephemeral {
		cfg.Storage.Backend = config.BackendMemory
	}
	if opts.dataPath != "" {
		cfg.Storage.Path = opts.dataPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession loads the configuration, the logger and the stored state.
// console sends logs to stderr when it is a terminal.
func openSession(opts *rootOptions, console bool) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	log, closer, err := logging.New(logging.Options{
		Config:  cfg.Log,
		Verbose: opts.verbose,
		Console: console,
	})
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.Storage, log)
	if err != nil {
		closer.Close()
		return nil, err
	}

	h := home.Open(st, log, home.Options{
		HistoryLimit: cfg.UI.HistoryLimit,
		DefaultTheme: models.Theme(cfg.UI.Theme),
	})

	return &session{
		cfg:       cfg,
		log:       log,
		store:     st,
		home:      h,
		logCloser: closer,
	}, nil
}

// Close releases the store and the log file
func (s *session) Close() error {
	err := s.store.Close()
	if cerr := s.logCloser.Close(); err == nil {
		err = cerr
	}
	return err
}
