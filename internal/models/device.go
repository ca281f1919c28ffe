package models

import (
	"encoding/json"
	"fmt"
)

// DeviceType identifies which controls a device exposes
type DeviceType string

const (
	DeviceLight DeviceType = "light"
	DeviceFan   DeviceType = "fan"
	DevicePlug  DeviceType = "plug"
)

// Valid reports whether t is one of the known device types
func (t DeviceType) Valid() bool {
	switch t {
	case DeviceLight, DeviceFan, DevicePlug:
		return true
	}
	return false
}

// Control ranges
const (
	MinBrightness = 1
	MaxBrightness = 100
	MinColorTemp  = 2700
	MaxColorTemp  = 6500
	ColorTempStep = 100
	MinSpeed      = 0
	MaxSpeed      = 3

	// Values the editor shows for a light that has never reported them
	DefaultEditorBrightness = 70
	DefaultEditorColorTemp  = 4000
)

// DeviceState holds the type-dependent attributes of a device.
// Lights use Brightness and ColorTemp, fans use Speed, plugs only Power.
type DeviceState struct {
	Power      bool `json:"power"`
	Brightness *int `json:"brightness,omitempty"`
	ColorTemp  *int `json:"colorTemp,omitempty"`
	Speed      *int `json:"speed,omitempty"`
}

// StatePatch is a partial state. Nil fields are left untouched by Apply.
type StatePatch struct {
	Power      *bool `json:"power,omitempty"`
	Brightness *int  `json:"brightness,omitempty"`
	ColorTemp  *int  `json:"colorTemp,omitempty"`
	Speed      *int  `json:"speed,omitempty"`
}

// Device is a simulated home appliance
type Device struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      DeviceType        `json:"type"`
	Room      string            `json:"room"`
	Icon      string            `json:"icon"`
	State     DeviceState       `json:"state"`
	Schedules []json.RawMessage `json:"schedules"`
}

// DevicePatch is a partial device record keyed by ID.
// A non-nil State replaces the whole state, like any other top-level field.
type DevicePatch struct {
	ID        string
	Name      *string
	Room      *string
	Icon      *string
	Type      *DeviceType
	State     *DeviceState
	Schedules []json.RawMessage
}

// Int returns a pointer to v
func Int(v int) *int {
	return &v
}

// Bool returns a pointer to v
func Bool(v bool) *bool {
	return &v
}

// String returns a pointer to v
func String(v string) *string {
	return &v
}

// IntValue dereferences p, returning def when p is nil
func IntValue(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// Clone returns a copy of the state that shares no pointers with s
func (s DeviceState) Clone() DeviceState {
	c := DeviceState{Power: s.Power}
	if s.Brightness != nil {
		c.Brightness = Int(*s.Brightness)
	}
	if s.ColorTemp != nil {
		c.ColorTemp = Int(*s.ColorTemp)
	}
	if s.Speed != nil {
		c.Speed = Int(*s.Speed)
	}
	return c
}

// Apply returns the state overlaid with the non-nil fields of p
func (s DeviceState) Apply(p StatePatch) DeviceState {
	next := s.Clone()
	if p.Power != nil {
		next.Power = *p.Power
	}
	if p.Brightness != nil {
		next.Brightness = Int(*p.Brightness)
	}
	if p.ColorTemp != nil {
		next.ColorTemp = Int(*p.ColorTemp)
	}
	if p.Speed != nil {
		next.Speed = Int(*p.Speed)
	}
	return next
}

// Clone creates a deep copy of the device
func (d Device) Clone() Device {
	clone := d
	clone.State = d.State.Clone()
	if d.Schedules != nil {
		clone.Schedules = make([]json.RawMessage, len(d.Schedules))
		for i, s := range d.Schedules {
			clone.Schedules[i] = append(json.RawMessage(nil), s...)
		}
	}
	return clone
}

// Merge returns the device with every set field of p copied over.
// The patch ID is not applied.
func (d Device) Merge(p DevicePatch) Device {
	next := d.Clone()
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Room != nil {
		next.Room = *p.Room
	}
	if p.Icon != nil {
		next.Icon = *p.Icon
	}
	if p.Type != nil {
		next.Type = *p.Type
	}
	if p.State != nil {
		next.State = p.State.Clone()
	}
	if p.Schedules != nil {
		next.Schedules = Device{Schedules: p.Schedules}.Clone().Schedules
	}
	return next
}

// Brightness returns the light brightness, or 0 for devices without one
func (d Device) Brightness() int {
	return IntValue(d.State.Brightness, 0)
}

// ColorTemp returns the light colour temperature in Kelvin, or 0
func (d Device) ColorTemp() int {
	return IntValue(d.State.ColorTemp, 0)
}

// Speed returns the fan speed, or 0
func (d Device) Speed() int {
	return IntValue(d.State.Speed, 0)
}

// SearchText is the text matched by the dashboard search
func (d Device) SearchText() string {
	return fmt.Sprintf("%s %s %s", d.Name, d.Room, d.Type)
}

// ClampBrightness limits v to the brightness slider range
func ClampBrightness(v int) int {
	return clamp(v, MinBrightness, MaxBrightness)
}

// ClampColorTemp limits v to the colour slider range
func ClampColorTemp(v int) int {
	return clamp(v, MinColorTemp, MaxColorTemp)
}

// ClampSpeed limits v to the fan speeds
func ClampSpeed(v int) int {
	return clamp(v, MinSpeed, MaxSpeed)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
