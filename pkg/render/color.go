package render

import (
	"image/color"

	"github.com/kaelwright/trigon/pkg/math3d"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience.
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorGray    = color.RGBA{128, 128, 128, 255}
	ColorSky     = color.RGBA{135, 206, 235, 255}
	ColorGrass   = color.RGBA{34, 139, 34, 255}
	ColorRoad    = color.RGBA{64, 64, 64, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// MultiplyColor scales an opaque color's channels by intensity, clamping to
// [0,255].
func MultiplyColor(c Color, intensity float64) Color {
	return RGB(
		scaleChannel(c.R, intensity),
		scaleChannel(c.G, intensity),
		scaleChannel(c.B, intensity),
	)
}

// Vec3ToColor converts a linear-float framebuffer pixel to an 8-bit-per-
// channel Color, clamping each component to [0,1] first. It is the
// per-pixel equivalent of FramebufferToRGB, used by presentation paths that
// need one color.Color at a time instead of a byte slice.
func Vec3ToColor(c math3d.Vec3) Color {
	return RGB(clampChannel(c.X), clampChannel(c.Y), clampChannel(c.Z))
}

func scaleChannel(v uint8, intensity float64) uint8 {
	f := float64(v) * intensity
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}
