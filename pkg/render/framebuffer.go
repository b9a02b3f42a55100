package render

import "github.com/kaelwright/trigon/pkg/math3d"

// clearDepth is the z-buffer sentinel: greater than any depth value the
// rasterizer can produce, so the first write to a pixel always passes the
// depth test.
const clearDepth = 2.0

// Framebuffer holds a linear RGB color buffer and a z-buffer for one frame.
// Color channels are unclamped float64 in roughly [0,1]; conversion to
// 8-bit-per-channel output happens at presentation time via FramebufferToRGB,
// so intermediate shading work never loses precision to premature rounding.
type Framebuffer struct {
	Width  int
	Height int
	Color  []math3d.Vec3 // Row-major linear RGB
	Depth  []float64     // Row-major depth buffer
}

// NewFramebuffer creates a framebuffer with the given pixel dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{Width: width, Height: height}
	fb.Resize(width, height)
	return fb
}

// Resize reallocates the buffers for new dimensions and clears them.
func (fb *Framebuffer) Resize(width, height int) {
	fb.Width = width
	fb.Height = height
	fb.Color = make([]math3d.Vec3, width*height)
	fb.Depth = make([]float64, width*height)
	fb.Clear(math3d.Zero3())
}

// Clear fills the color buffer with c and resets the depth buffer to its
// sentinel value.
func (fb *Framebuffer) Clear(c math3d.Vec3) {
	for i := range fb.Color {
		fb.Color[i] = c
	}
	for i := range fb.Depth {
		fb.Depth[i] = clearDepth
	}
}

// SetPixel writes a color at (x, y). Out-of-bounds writes are silently
// dropped, matching the rasterizer's bounding-box clamp.
func (fb *Framebuffer) SetPixel(x, y int, c math3d.Vec3) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Color[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y), or the zero vector out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) math3d.Vec3 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math3d.Zero3()
	}
	return fb.Color[y*fb.Width+x]
}

// TestAndSetDepth performs the z-buffer test at (x, y): if depth is nearer
// than the stored value it writes depth and reports true, otherwise it
// leaves the buffer untouched and reports false. Out-of-bounds coordinates
// always report false.
func (fb *Framebuffer) TestAndSetDepth(x, y int, depth float64) bool {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return false
	}
	i := y*fb.Width + x
	if depth >= fb.Depth[i] {
		return false
	}
	fb.Depth[i] = depth
	return true
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm. Used by the terminal presenter's axis gizmo overlay.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c math3d.Vec3) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect draws a filled rectangle.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c math3d.Vec3) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FramebufferToRGB converts the linear float color buffer to interleaved
// 8-bit RGB bytes (3 bytes per pixel, row-major), clamping each channel to
// [0,1] before scaling to [0,255]. TGA export reads the framebuffer through
// it; PNG export and the terminal presenter use the per-pixel Vec3ToColor,
// which applies the same clampChannel conversion.
func FramebufferToRGB(fb *Framebuffer) []byte {
	out := make([]byte, len(fb.Color)*3)
	for i, c := range fb.Color {
		out[i*3+0] = clampChannel(c.X)
		out[i*3+1] = clampChannel(c.Y)
		out[i*3+2] = clampChannel(c.Z)
	}
	return out
}

func clampChannel(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v * 255)
}
