// Package home owns the dashboard state: the device catalog, the settings and
// the activity history. Every mutation goes through the catalog operations and
// is written back to the store before the method returns.
package home

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/angristan/smarthome-tui/internal/catalog"
	"github.com/angristan/smarthome-tui/internal/history"
	"github.com/angristan/smarthome-tui/internal/models"
	"github.com/angristan/smarthome-tui/internal/store"
)

const defaultHistoryLimit = 50

var ErrUnknownDevice = errors.New("unknown device")

// Options tune how state is restored
type Options struct {
	// Activity entries kept
	HistoryLimit int
	// Theme used when no settings are stored
	DefaultTheme models.Theme
	// Clock for activity timestamps, time.Now when nil
	Now func() time.Time
}

// Home is the single owner of the dashboard state
type Home struct {
	store    *store.Store
	log      logr.Logger
	now      func() time.Time
	devices  []models.Device
	settings models.Settings
	history  *history.Log
}

// Open restores the state from st, falling back to the sample catalog and
// default settings for anything missing or unreadable.
func Open(st *store.Store, log logr.Logger, opts Options) *Home {
	limit := opts.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	h := &Home{
		store:   st,
		log:     log.WithName("home"),
		now:     opts.Now,
		history: history.New(limit),
	}
	if h.now == nil {
		h.now = time.Now
	}

	devices := store.Load(st, store.KeyDevices, catalog.SampleDevices())
	if err := catalog.Validate(devices); err != nil {
		h.log.Info("Stored catalog is invalid, using sample devices", "error", err.Error())
		devices = catalog.SampleDevices()
	}
	for i := range devices {
		if devices[i].Schedules == nil {
			devices[i].Schedules = []json.RawMessage{}
		}
	}
	h.devices = devices

	defaults := models.DefaultSettings()
	if opts.DefaultTheme != "" {
		defaults.Theme = opts.DefaultTheme
	}
	h.settings = store.Load(st, store.KeySettings, defaults)

	if h.settings.SaveHistory {
		h.history.Restore(store.Load(st, store.KeyHistory, []history.Entry{}))
	}

	h.log.V(1).Info("State restored", "devices", len(h.devices), "theme", h.settings.Theme, "history", h.history.Len())
	return h
}

// Devices returns the current catalog. Callers must not modify it.
func (h *Home) Devices() []models.Device {
	return h.devices
}

// Settings returns the current settings
func (h *Home) Settings() models.Settings {
	return h.settings
}

// LastUpdated returns when the device last changed in this or a saved session
func (h *Home) LastUpdated(id string) (time.Time, bool) {
	e, ok := h.history.LastFor(id)
	return e.At, ok
}

// History returns the activity entries, oldest first
func (h *Home) History() []history.Entry {
	return h.history.Entries()
}

// Toggle flips the power of a device
func (h *Home) Toggle(id string) error {
	d, ok := catalog.Find(h.devices, id)
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownDevice)
	}
	h.devices = catalog.Toggle(h.devices, id)
	h.record(id, powerAction(!d.State.Power))
	h.persist()
	return nil
}

// Change merges patch into a device state
func (h *Home) Change(id string, patch models.StatePatch) error {
	if _, ok := catalog.Find(h.devices, id); !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownDevice)
	}
	h.devices = catalog.Change(h.devices, id, patch)
	h.record(id, describePatch(patch))
	h.persist()
	return nil
}

// Save merges an edited record into the catalog
func (h *Home) Save(patch models.DevicePatch) error {
	if _, ok := catalog.Find(h.devices, patch.ID); !ok {
		return fmt.Errorf("%q: %w", patch.ID, ErrUnknownDevice)
	}
	h.devices = catalog.Save(h.devices, patch)
	h.record(patch.ID, "edited")
	h.persist()
	return nil
}

// AllOn turns every device on
func (h *Home) AllOn() {
	h.devices = catalog.AllOn(h.devices)
	h.recordAll("all on")
	h.persist()
}

// AllOff turns every device off
func (h *Home) AllOff() {
	h.devices = catalog.AllOff(h.devices)
	h.recordAll("all off")
	h.persist()
}

// UpdateSettings replaces the settings. Turning history saving off clears
// the saved history; turning it on saves the current session's entries.
func (h *Home) UpdateSettings(s models.Settings) {
	prev := h.settings
	h.settings = s
	h.store.Save(store.KeySettings, h.settings)

	switch {
	case s.SaveHistory && !prev.SaveHistory:
		h.store.Save(store.KeyHistory, h.history.Entries())
	case !s.SaveHistory && prev.SaveHistory:
		h.store.Save(store.KeyHistory, []history.Entry{})
	}
	h.log.V(1).Info("Settings updated", "theme", s.Theme, "saveHistory", s.SaveHistory, "automations", s.AutomationsEnabled)
}

func (h *Home) record(id, action string) {
	h.history.Record(history.Entry{DeviceID: id, Action: action, At: h.now()})
	h.log.V(1).Info("Device changed", "id", id, "action", action)
}

func (h *Home) recordAll(action string) {
	for _, d := range h.devices {
		h.record(d.ID, action)
	}
}

func (h *Home) persist() {
	h.store.Save(store.KeyDevices, h.devices)
	if h.settings.SaveHistory {
		h.store.Save(store.KeyHistory, h.history.Entries())
	}
}

func powerAction(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// describePatch renders a patch as a short activity label
func describePatch(p models.StatePatch) string {
	var parts []string
	if p.Power != nil {
		parts = append(parts, powerAction(*p.Power))
	}
	if p.Brightness != nil {
		parts = append(parts, fmt.Sprintf("brightness %d%%", *p.Brightness))
	}
	if p.ColorTemp != nil {
		parts = append(parts, fmt.Sprintf("color %dK", *p.ColorTemp))
	}
	if p.Speed != nil {
		parts = append(parts, fmt.Sprintf("speed %d", *p.Speed))
	}
	if len(parts) == 0 {
		return "changed"
	}
	return strings.Join(parts, ", ")
}
