package models

import "testing"

func TestKelvinToRGB(t *testing.T) {
	tests := []struct {
		name      string
		kelvin    int
		wantR     uint8
		wantG     uint8
		wantB     uint8
		tolerance uint8
	}{
		{
			name:      "warm white (2700K)",
			kelvin:    2700,
			wantR:     255,
			wantG:     167,
			wantB:     87,
			tolerance: 10,
		},
		{
			name:      "daylight (6500K)",
			kelvin:    6500,
			wantR:     255,
			wantG:     254,
			wantB:     250,
			tolerance: 10,
		},
		{
			name:      "candle (1900K)",
			kelvin:    1900,
			wantR:     255,
			wantG:     131,
			wantB:     0,
			tolerance: 10,
		},
		{
			name:      "invalid temperature falls back to white",
			kelvin:    0,
			wantR:     255,
			wantG:     255,
			wantB:     255,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := KelvinToRGB(tt.kelvin)
			if !withinTolerance(c.R, tt.wantR, tt.tolerance) ||
				!withinTolerance(c.G, tt.wantG, tt.tolerance) ||
				!withinTolerance(c.B, tt.wantB, tt.tolerance) {
				t.Errorf("KelvinToRGB(%d) = (%d, %d, %d), want (%d, %d, %d) ±%d",
					tt.kelvin, c.R, c.G, c.B, tt.wantR, tt.wantG, tt.wantB, tt.tolerance)
			}
		})
	}
}

func TestKelvinWarmerIsRedder(t *testing.T) {
	warm := KelvinToRGB(MinColorTemp)
	cool := KelvinToRGB(MaxColorTemp)
	if warm.B >= cool.B {
		t.Errorf("Expected warm light to have less blue: warm=%v cool=%v", warm, cool)
	}
}

func TestHex(t *testing.T) {
	c := RGB{255, 128, 0}
	if got := c.Hex(); got != "#FF8000" {
		t.Errorf("Hex() = %s, want #FF8000", got)
	}
}

func TestScale(t *testing.T) {
	c := RGB{200, 100, 50}.Scale(50)
	if c.R != 100 || c.G != 50 || c.B != 25 {
		t.Errorf("Scale(50) = %v, want {100 50 25}", c)
	}

	c = RGB{200, 100, 50}.Scale(150)
	if c.R != 200 {
		t.Errorf("Scale above 100 should clamp, got %v", c)
	}
}

func TestSwatch(t *testing.T) {
	fan := Device{Type: DeviceFan, State: DeviceState{Power: true, Speed: Int(2)}}
	if fan.Swatch() != nil {
		t.Error("Expected no swatch for a fan")
	}

	off := Device{Type: DeviceLight, State: DeviceState{Brightness: Int(80), ColorTemp: Int(4000)}}
	on := off.Clone()
	on.State.Power = true

	if off.Swatch() == nil || on.Swatch() == nil {
		t.Fatal("Expected swatches for lights")
	}
	if *off.Swatch() == *on.Swatch() {
		t.Error("Expected an off light to render differently from an on light")
	}
}

func withinTolerance(got, want, tolerance uint8) bool {
	diff := int(got) - int(want)
	if diff < 0 {
		diff = -diff
	}
	return diff <= int(tolerance)
}
