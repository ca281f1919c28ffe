// Package store persists dashboard state as JSON values under string keys.
//
// It is a best-effort cache: Load falls back to a default on any read or
// decode failure and Save swallows write failures. Both are logged at debug
// verbosity only.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/go-logr/logr"
)

// Keys under which the dashboard persists its state
const (
	KeyDevices  = "shp.devices"
	KeySettings = "shp.settings"
	KeyHistory  = "shp.history"
)

// ErrNotFound is returned by surfaces for keys that were never written
var ErrNotFound = errors.New("key not found")

// Surface is a durable key-value backend
type Surface interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Store serializes values to JSON on top of a Surface
type Store struct {
	surface Surface
	log     logr.Logger
}

// New creates a store writing to surface
func New(surface Surface, log logr.Logger) *Store {
	return &Store{
		surface: surface,
		log:     log.WithName("store"),
	}
}

// Load decodes the value stored under key, or returns def when the key is
// absent, empty, null or not decodable as T.
func Load[T any](s *Store, key string, def T) T {
	raw, err := s.surface.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.V(1).Info("Read failed, using default", "key", key, "error", err.Error())
		}
		return def
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.V(1).Info("Stored value is corrupted, using default", "key", key, "error", err.Error())
		return def
	}
	return v
}

// Save encodes value and writes it under key. Failures are dropped.
func (s *Store) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.V(1).Info("Encode failed, not saved", "key", key, "error", err.Error())
		return
	}
	if err := s.surface.Set(key, data); err != nil {
		s.log.V(1).Info("Write failed, not saved", "key", key, "error", err.Error())
		return
	}
	s.log.V(1).Info("Saved", "key", key, "bytes", len(data))
}

// Close releases the surface if it holds resources
func (s *Store) Close() error {
	if c, ok := s.surface.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
