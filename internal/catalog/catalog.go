// Package catalog holds the pure operations over the device list.
//
// Every operation returns a new slice of freshly cloned devices, so callers
// can keep the previous catalog around without it changing underneath them.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/angristan/smarthome-tui/internal/models"
)

var (
	ErrDuplicateID = errors.New("duplicate device id")
	ErrUnknownType = errors.New("unknown device type")
	ErrMissingID   = errors.New("device without id")
)

// Filter returns the devices in activeRoom whose search text contains query.
// Matching is case-insensitive and the catalog order is preserved.
func Filter(devices []models.Device, activeRoom, query string) []models.Device {
	q := strings.ToLower(query)
	filtered := make([]models.Device, 0, len(devices))
	for _, d := range devices {
		if activeRoom != AllRooms && d.Room != activeRoom {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(d.SearchText()), q) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// Rooms returns RoomsOrder followed by every other room in the catalog,
// in order of first appearance and without duplicates.
func Rooms(devices []models.Device) []string {
	seen := make(map[string]bool, len(RoomsOrder)+len(devices))
	rooms := make([]string, 0, len(RoomsOrder)+len(devices))

	add := func(room string) {
		if room == "" || seen[room] {
			return
		}
		seen[room] = true
		rooms = append(rooms, room)
	}

	for _, r := range RoomsOrder {
		add(r)
	}
	for _, d := range devices {
		add(d.Room)
	}
	return rooms
}

// Find returns the device with the given id
func Find(devices []models.Device, id string) (models.Device, bool) {
	for _, d := range devices {
		if d.ID == id {
			return d, true
		}
	}
	return models.Device{}, false
}

// Toggle flips the power of the device with the given id
func Toggle(devices []models.Device, id string) []models.Device {
	return mapDevices(devices, func(d models.Device) models.Device {
		if d.ID != id {
			return d
		}
		d.State = d.State.Apply(models.StatePatch{Power: models.Bool(!d.State.Power)})
		return d
	})
}

// Change merges patch into the state of the device with the given id
func Change(devices []models.Device, id string, patch models.StatePatch) []models.Device {
	return mapDevices(devices, func(d models.Device) models.Device {
		if d.ID != id {
			return d
		}
		d.State = d.State.Apply(patch)
		return d
	})
}

// Save merges patch into the top-level record with the same id
func Save(devices []models.Device, patch models.DevicePatch) []models.Device {
	return mapDevices(devices, func(d models.Device) models.Device {
		if d.ID != patch.ID {
			return d
		}
		return d.Merge(patch)
	})
}

// AllOn turns every device on
func AllOn(devices []models.Device) []models.Device {
	return setPower(devices, true)
}

// AllOff turns every device off
func AllOff(devices []models.Device) []models.Device {
	return setPower(devices, false)
}

func setPower(devices []models.Device, on bool) []models.Device {
	return mapDevices(devices, func(d models.Device) models.Device {
		d.State = d.State.Apply(models.StatePatch{Power: models.Bool(on)})
		return d
	})
}

// mapDevices applies fn to a clone of each device
func mapDevices(devices []models.Device, fn func(models.Device) models.Device) []models.Device {
	next := make([]models.Device, len(devices))
	for i, d := range devices {
		next[i] = fn(d.Clone())
	}
	return next
}

// Validate checks that ids are present and unique and types are known
func Validate(devices []models.Device) error {
	seen := make(map[string]bool, len(devices))
	for i, d := range devices {
		if d.ID == "" {
			return fmt.Errorf("device %d: %w", i, ErrMissingID)
		}
		if seen[d.ID] {
			return fmt.Errorf("%q: %w", d.ID, ErrDuplicateID)
		}
		seen[d.ID] = true
		if !d.Type.Valid() {
			return fmt.Errorf("%q has type %q: %w", d.ID, d.Type, ErrUnknownType)
		}
	}
	return nil
}

// Summary counts powered devices and the rooms they are in
type Summary struct {
	DevicesOn   int
	Devices     int
	RoomsActive int
	Rooms       int
}

// Summarize computes the status bar counts for devices
func Summarize(devices []models.Device) Summary {
	var s Summary
	rooms := make(map[string]bool)
	active := make(map[string]bool)

	for _, d := range devices {
		s.Devices++
		rooms[d.Room] = true
		if d.State.Power {
			s.DevicesOn++
			active[d.Room] = true
		}
	}
	s.Rooms = len(rooms)
	s.RoomsActive = len(active)
	return s
}
