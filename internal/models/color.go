package models

import (
	"fmt"
	"math"
)

// RGB is an 8-bit colour
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as "#RRGGBB"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Scale dims the colour to pct percent (0-100)
func (c RGB) Scale(pct int) RGB {
	f := clampFloat(float64(pct)/100.0, 0, 1)
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// KelvinToRGB approximates the colour of a black body at the given temperature.
// Algorithm based on Tanner Helland's work
// http://www.tannerhelland.com/4435/convert-temperature-rgb-algorithm-code/
func KelvinToRGB(kelvin int) RGB {
	if kelvin <= 0 {
		return RGB{255, 255, 255}
	}
	temp := float64(kelvin) / 100.0

	var rf, gf, bf float64

	// Red
	if temp <= 66 {
		rf = 255
	} else {
		rf = 329.698727446 * math.Pow(temp-60, -0.1332047592)
		rf = clampFloat(rf, 0, 255)
	}

	// Green
	if temp <= 66 {
		gf = 99.4708025861*math.Log(temp) - 161.1195681661
	} else {
		gf = 288.1221695283 * math.Pow(temp-60, -0.0755148492)
	}
	gf = clampFloat(gf, 0, 255)

	// Blue
	switch {
	case temp >= 66:
		bf = 255
	case temp <= 19:
		bf = 0
	default:
		bf = 138.5177312231*math.Log(temp-10) - 305.0447927307
		bf = clampFloat(bf, 0, 255)
	}

	return RGB{uint8(rf), uint8(gf), uint8(bf)}
}

// Swatch returns the preview colour of a light, or nil for other devices.
// Lights that are off render as a dim grey.
func (d Device) Swatch() *RGB {
	if d.Type != DeviceLight {
		return nil
	}
	if !d.State.Power {
		return &RGB{0x4A, 0x4A, 0x5A}
	}
	c := KelvinToRGB(IntValue(d.State.ColorTemp, DefaultEditorColorTemp))
	// Keep dim lights visible on a dark terminal
	pct := 30 + IntValue(d.State.Brightness, MaxBrightness)*70/100
	c = c.Scale(pct)
	return &c
}

// clampFloat clamps a float64 to a range
func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
