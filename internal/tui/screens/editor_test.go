package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/angristan/smarthome-tui/internal/catalog"
	"github.com/angristan/smarthome-tui/internal/models"
	"github.com/angristan/smarthome-tui/internal/tui/messages"
)

func openEditor(t *testing.T, id string) EditorModel {
	t.Helper()
	d, ok := catalog.Find(catalog.SampleDevices(), id)
	if !ok {
		t.Fatalf("Sample device %s missing", id)
	}
	m := NewEditorModel()
	m.Open(d)
	return m
}

func pressEditor(m EditorModel, keys ...string) (EditorModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m, cmd
}

func TestEditorSeededFromDevice(t *testing.T) {
	m := openEditor(t, "living-light")

	if !m.IsOpen() {
		t.Fatal("Expected editor open")
	}
	d := m.Draft()
	if d.Name != "Living Light" || d.Room != "Living Room" {
		t.Errorf("Unexpected draft %+v", d)
	}

	view := m.View()
	for _, want := range []string{"Edit", "Living Light", "Brightness", "80%", "4000K"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestEditorTextFields(t *testing.T) {
	m := openEditor(t, "coffee-plug")

	m, _ = pressEditor(m, "!", "tab", "?")

	d := m.Draft()
	if d.Name != "Coffee Maker!" {
		t.Errorf("Expected name typed into, got %q", d.Name)
	}
	if d.Room != "Kitchen?" {
		t.Errorf("Expected room typed into, got %q", d.Room)
	}
}

func TestEditorEmptyNameAllowed(t *testing.T) {
	m := openEditor(t, "coffee-plug")
	m.nameInput.SetValue("")

	_, cmd := pressEditor(m, "enter")
	msg := intent(t, cmd).(messages.SaveDeviceMsg)
	if *msg.Patch.Name != "" {
		t.Errorf("Expected empty name saved as is, got %q", *msg.Patch.Name)
	}
}

func TestEditorSliders(t *testing.T) {
	m := openEditor(t, "living-light")

	// name → room → brightness
	m, _ = pressEditor(m, "tab", "tab", "right", "right")
	if got := *m.Draft().State.Brightness; got != 90 {
		t.Errorf("Expected brightness 90, got %d", got)
	}

	m, _ = pressEditor(m, "tab", "h", "h", "h")
	if got := *m.Draft().State.ColorTemp; got != 3700 {
		t.Errorf("Expected color 3700K, got %d", got)
	}

	// Focus wraps back to the name field
	m, _ = pressEditor(m, "tab", "x")
	if got := m.Draft().Name; got != "Living Lightx" {
		t.Errorf("Expected focus on name, got %q", got)
	}
}

func TestEditorSliderDefaults(t *testing.T) {
	d := models.Device{ID: "bare", Name: "Bare", Type: models.DeviceLight, Room: "Den"}
	m := NewEditorModel()
	m.Open(d)

	view := m.View()
	if !strings.Contains(view, "70%") || !strings.Contains(view, "4000K") {
		t.Errorf("Expected default slider values in view:\n%s", view)
	}
	if m.Draft().State.Brightness != nil {
		t.Error("Untouched sliders must not add state")
	}

	m, _ = pressEditor(m, "tab", "tab", "+")
	if got := *m.Draft().State.Brightness; got != 75 {
		t.Errorf("Expected 75 from the default, got %d", got)
	}
}

func TestEditorSliderClamps(t *testing.T) {
	m := openEditor(t, "living-light")
	m, _ = pressEditor(m, "tab", "tab")
	for i := 0; i < 30; i++ {
		m, _ = pressEditor(m, "-")
	}
	if got := *m.Draft().State.Brightness; got != models.MinBrightness {
		t.Errorf("Expected brightness clamped to %d, got %d", models.MinBrightness, got)
	}
}

func TestEditorNonLightHasNoSliders(t *testing.T) {
	m := openEditor(t, "bed-fan")

	if strings.Contains(m.View(), "Brightness") {
		t.Error("Fans have no brightness slider")
	}
	m, _ = pressEditor(m, "tab", "tab", "y")
	if got := m.Draft().Name; got != "Ceiling Fany" {
		t.Errorf("Expected focus to wrap to name, got %q", got)
	}
}

func TestEditorSave(t *testing.T) {
	m := openEditor(t, "living-light")
	m, _ = pressEditor(m, "tab", "tab", "right")

	_, cmd := pressEditor(m, "enter")
	msg, ok := intent(t, cmd).(messages.SaveDeviceMsg)
	if !ok {
		t.Fatal("Expected SaveDeviceMsg")
	}

	saved := catalog.Save(catalog.SampleDevices(), msg.Patch)
	d, _ := catalog.Find(saved, "living-light")
	if *d.State.Brightness != 85 || *d.State.ColorTemp != 4000 || d.Name != "Living Light" {
		t.Errorf("Unexpected saved device %+v", d)
	}
}

func TestEditorCancel(t *testing.T) {
	m := openEditor(t, "living-light")
	m, _ = pressEditor(m, "z")

	_, cmd := pressEditor(m, "esc")
	if _, ok := intent(t, cmd).(messages.CloseEditorMsg); !ok {
		t.Fatal("Expected CloseEditorMsg")
	}
}

func TestEditorCloseResetsDraft(t *testing.T) {
	m := openEditor(t, "living-light")
	m, _ = pressEditor(m, "z")
	m.Close()

	if m.IsOpen() {
		t.Error("Expected editor closed")
	}
	if d := m.Draft(); d.ID != "" || d.Name != "" {
		t.Errorf("Expected an empty draft, got %+v", d)
	}

	// Reopening another device starts fresh
	d, _ := catalog.Find(catalog.SampleDevices(), "bed-fan")
	m.Open(d)
	if m.Draft().Name != "Ceiling Fan" {
		t.Errorf("Expected a fresh draft, got %q", m.Draft().Name)
	}
}

func TestEditorDraftIsACopy(t *testing.T) {
	devices := catalog.SampleDevices()
	m := NewEditorModel()
	m.Open(devices[0])

	m, _ = pressEditor(m, "tab", "tab", "right")

	if *devices[0].State.Brightness != 80 {
		t.Error("Editing must not touch the catalog")
	}
}

func TestEditorIgnoresKeysWhenClosed(t *testing.T) {
	m := NewEditorModel()
	if _, cmd := pressEditor(m, "enter"); cmd != nil {
		t.Error("Expected no command from a closed editor")
	}
}
