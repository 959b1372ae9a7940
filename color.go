package octmap

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA implements the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return uint32(clamp01(c.R) * 65535),
		uint32(clamp01(c.G) * 65535),
		uint32(clamp01(c.B) * 65535),
		uint32(clamp01(c.A) * 65535)
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(1, 1, 1)
	Red     = RGB(1, 0, 0)
	Green   = RGB(0, 1, 0)
	Blue    = RGB(0, 0, 1)
	Yellow  = RGB(1, 1, 0)
	Cyan    = RGB(0, 1, 1)
	Magenta = RGB(1, 0, 1)
)
