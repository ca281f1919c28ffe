package components

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smarthome-tui/internal/catalog"
	"github.com/angristan/smarthome-tui/internal/models"
	"github.com/angristan/smarthome-tui/internal/tui/styles"
)

func sample(t *testing.T, id string) models.Device {
	t.Helper()
	d, ok := catalog.Find(catalog.SampleDevices(), id)
	if !ok {
		t.Fatalf("Sample device %s missing", id)
	}
	return d
}

func TestRenderDeviceCard(t *testing.T) {
	st := styles.New(models.ThemeDark)

	tests := []struct {
		id   string
		want []string
	}{
		{"living-light", []string{"Living Light", "Living Room • light", "80%", "4000K"}},
		{"bed-fan", []string{"Ceiling Fan", "Bedroom • fan", "speed 2"}},
		{"coffee-plug", []string{"Coffee Maker", "Kitchen • plug", "power off"}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			view := stripped(RenderDeviceCard(st, DeviceCard{Device: sample(t, tt.id)}))
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("Card missing %q:\n%s", want, view)
				}
			}
			if !strings.Contains(view, "0 schedules • Updated —") {
				t.Errorf("Card footer missing:\n%s", view)
			}
		})
	}
}

func TestDeviceCardSize(t *testing.T) {
	st := styles.New(models.ThemeLight)

	for _, d := range catalog.SampleDevices() {
		view := RenderDeviceCard(st, DeviceCard{Device: d, Selected: d.ID == "bed-fan"})
		if h := lipgloss.Height(view); h != CardHeight {
			t.Errorf("%s: height = %d, want %d", d.ID, h, CardHeight)
		}
		if w := lipgloss.Width(view); w != CardWidth {
			t.Errorf("%s: width = %d, want %d", d.ID, w, CardWidth)
		}
	}
}

func TestDeviceCardFooter(t *testing.T) {
	d := sample(t, "coffee-plug")
	d.Schedules = []json.RawMessage{json.RawMessage(`{}`)}
	at := time.Date(2024, 5, 1, 7, 30, 0, 0, time.Local)

	view := stripped(RenderDeviceCard(styles.New(models.ThemeLight), DeviceCard{Device: d, LastUpdated: at}))

	if !strings.Contains(view, "1 schedule • Updated 07:30") {
		t.Errorf("Unexpected footer:\n%s", view)
	}
}

func TestFormatLastUpdated(t *testing.T) {
	if got := FormatLastUpdated(time.Time{}); got != "—" {
		t.Errorf("FormatLastUpdated(zero) = %q", got)
	}
}

func TestRenderBrightnessBar(t *testing.T) {
	st := styles.New(models.ThemeDark)

	tests := []struct {
		brightness int
		on         bool
		filled     int
	}{
		{100, true, 10},
		{50, true, 5},
		{1, true, 1},
		{80, false, 0},
	}

	for _, tt := range tests {
		bar := RenderBrightnessBar(st, tt.brightness, tt.on, 10)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("RenderBrightnessBar(%d, %v) filled %d cells, want %d", tt.brightness, tt.on, got, tt.filled)
		}
		if w := lipgloss.Width(bar); w != 10 {
			t.Errorf("RenderBrightnessBar(%d, %v) width = %d", tt.brightness, tt.on, w)
		}
	}
}

func TestRenderTempBarMarker(t *testing.T) {
	st := styles.New(models.ThemeDark)

	bar := RenderTempBar(st, models.MinColorTemp, 10)
	if !strings.HasPrefix(stripped(bar), "┃") {
		t.Errorf("Expected marker at the warm end: %q", stripped(bar))
	}
	bar = RenderTempBar(st, models.MaxColorTemp, 10)
	if !strings.HasSuffix(stripped(bar), "┃") {
		t.Errorf("Expected marker at the cool end: %q", stripped(bar))
	}
}

func TestRenderSpeedBar(t *testing.T) {
	st := styles.New(models.ThemeDark)

	if got := strings.Count(RenderSpeedBar(st, 2, true), "●"); got != 2 {
		t.Errorf("Expected 2 filled dots, got %d", got)
	}
	if got := strings.Count(RenderSpeedBar(st, 2, false), "●"); got != 0 {
		t.Errorf("Expected no filled dots when off, got %d", got)
	}
}

func TestRenderSidebar(t *testing.T) {
	st := styles.New(models.ThemeLight)
	view := RenderSidebar(st, Sidebar{
		Rooms:      []string{catalog.AllRooms, "Kitchen"},
		ActiveRoom: "Kitchen",
		Settings:   models.Settings{Theme: models.ThemeLight, SaveHistory: true},
	}, 24)
	view = stripped(view)

	for _, want := range []string{"> Kitchen", "  All", "All On", "All Off", "Save history on", "Automations off", "Theme light"} {
		if !strings.Contains(view, want) {
			t.Errorf("Sidebar missing %q:\n%s", want, view)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	view := RenderHeader(styles.New(models.ThemeDark), 80, "", models.ThemeDark)

	for _, want := range []string{"SmartHomePro", "Control center", "☾"} {
		if !strings.Contains(view, want) {
			t.Errorf("Header missing %q: %s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Living Room", 6); got != "Livin…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Den", 6); got != "Den" {
		t.Errorf("truncate = %q", got)
	}
}

// stripped drops styling so glyph positions can be checked
func stripped(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
