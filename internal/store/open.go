package store

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/angristan/smarthome-tui/internal/config"
)

// Open builds the store selected by the storage configuration
func Open(cfg config.StorageConfig, log logr.Logger) (*Store, error) {
	var surface Surface

	switch cfg.Backend {
	case config.BackendFile:
		surface = NewFileSurface(cfg.Path)
	case config.BackendSQLite:
		s, err := NewSQLiteSurface(log, cfg.Path)
		if err != nil {
			return nil, err
		}
		surface = s
	case config.BackendMemory:
		surface = NewMemorySurface()
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Backend, config.ErrUnknownBackend)
	}

	log.V(1).Info("Opened store", "backend", cfg.Backend, "path", cfg.Path)
	return New(surface, log), nil
}
