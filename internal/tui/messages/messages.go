package messages

import (
	"github.com/angristan/smarthome-tui/internal/models"
)

// ToggleDeviceMsg requests flipping a device's power
type ToggleDeviceMsg struct {
	ID string
}

// ChangeDeviceMsg requests merging a partial state into a device
type ChangeDeviceMsg struct {
	ID    string
	Patch models.StatePatch
}

// SaveDeviceMsg carries an edited record back from the editor
type SaveDeviceMsg struct {
	Patch models.DevicePatch
}

// QuickAllMsg requests turning every device on or off
type QuickAllMsg struct {
	On bool
}

// SettingsChangedMsg carries the new settings
type SettingsChangedMsg struct {
	Settings models.Settings
}

// OpenEditorMsg requests showing the editor for a device
type OpenEditorMsg struct {
	Device models.Device
}

// CloseEditorMsg requests hiding the editor without saving
type CloseEditorMsg struct{}
