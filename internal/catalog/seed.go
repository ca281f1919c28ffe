package catalog

import (
	"encoding/json"

	"github.com/angristan/smarthome-tui/internal/models"
)

// AllRooms is the room filter that matches every device
const AllRooms = "All"

// RoomsOrder lists the rooms shown first in the sidebar, in this order
var RoomsOrder = []string{AllRooms, "Living Room", "Kitchen", "Bedroom", "Bathroom", "Garage"}

// SampleDevices returns the catalog used when nothing is stored yet.
// Every call returns fresh values.
func SampleDevices() []models.Device {
	return []models.Device{
		{
			ID:        "living-light",
			Name:      "Living Light",
			Type:      models.DeviceLight,
			Room:      "Living Room",
			Icon:      "💡",
			State:     models.DeviceState{Power: false, Brightness: models.Int(80), ColorTemp: models.Int(4000)},
			Schedules: []json.RawMessage{},
		},
		{
			ID:        "kitchen-light",
			Name:      "Kitchen Main",
			Type:      models.DeviceLight,
			Room:      "Kitchen",
			Icon:      "🔆",
			State:     models.DeviceState{Power: false, Brightness: models.Int(90), ColorTemp: models.Int(5000)},
			Schedules: []json.RawMessage{},
		},
		{
			ID:        "bed-fan",
			Name:      "Ceiling Fan",
			Type:      models.DeviceFan,
			Room:      "Bedroom",
			Icon:      "🌀",
			State:     models.DeviceState{Power: false, Speed: models.Int(2)},
			Schedules: []json.RawMessage{},
		},
		{
			ID:        "coffee-plug",
			Name:      "Coffee Maker",
			Type:      models.DevicePlug,
			Room:      "Kitchen",
			Icon:      "🔌",
			State:     models.DeviceState{Power: false},
			Schedules: []json.RawMessage{},
		},
	}
}
