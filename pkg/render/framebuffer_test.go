package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaelwright/trigon/pkg/math3d"
)

func TestNewFramebufferClearsBuffers(t *testing.T) {
	fb := NewFramebuffer(4, 3)

	require.Len(t, fb.Color, 12)
	require.Len(t, fb.Depth, 12)
	for _, d := range fb.Depth {
		assert.Equal(t, clearDepth, d)
	}
	for _, c := range fb.Color {
		assert.Equal(t, math3d.Zero3(), c)
	}
}

func TestFramebufferClearSetsColorAndDepth(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	want := math3d.V3(0.1, 0.2, 0.3)
	fb.Clear(want)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			assert.Equal(t, want, fb.GetPixel(x, y))
		}
	}
	for _, d := range fb.Depth {
		assert.Equal(t, clearDepth, d)
	}
}

func TestFramebufferSetGetPixelOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(-1, 0, math3d.V3(1, 1, 1)) // should not panic
	fb.SetPixel(5, 5, math3d.V3(1, 1, 1))  // should not panic

	assert.Equal(t, math3d.Zero3(), fb.GetPixel(-1, 0))
	assert.Equal(t, math3d.Zero3(), fb.GetPixel(5, 5))
}

func TestFramebufferTestAndSetDepth(t *testing.T) {
	fb := NewFramebuffer(2, 2)

	assert.True(t, fb.TestAndSetDepth(0, 0, 0.5))
	assert.False(t, fb.TestAndSetDepth(0, 0, 0.6), "farther depth should fail the test")
	assert.True(t, fb.TestAndSetDepth(0, 0, 0.4), "nearer depth should pass")
	assert.False(t, fb.TestAndSetDepth(-1, 0, 0.1), "out of bounds should always fail")
}

func TestFramebufferResizeReallocates(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(0, 0, math3d.V3(1, 1, 1))

	fb.Resize(5, 5)

	assert.Equal(t, 5, fb.Width)
	assert.Equal(t, 5, fb.Height)
	assert.Len(t, fb.Color, 25)
	assert.Equal(t, math3d.Zero3(), fb.GetPixel(0, 0), "resize clears the buffer")
}

func TestFramebufferToRGBClampsChannels(t *testing.T) {
	fb := NewFramebuffer(3, 1)
	fb.SetPixel(0, 0, math3d.V3(-1, 0, 2))
	fb.SetPixel(1, 0, math3d.V3(0.5, 0.5, 0.5))
	fb.SetPixel(2, 0, math3d.V3(1, 1, 1))

	rgb := FramebufferToRGB(fb)

	assert.Equal(t, byte(0), rgb[0])
	assert.Equal(t, byte(0), rgb[1])
	assert.Equal(t, byte(255), rgb[2])

	assert.Equal(t, byte(127), rgb[3]) // 0.5*255 = 127.5, truncated toward zero

	assert.Equal(t, byte(255), rgb[6])
	assert.Equal(t, byte(255), rgb[7])
	assert.Equal(t, byte(255), rgb[8])
}

func TestFramebufferDrawRectFillsBounds(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	c := math3d.V3(1, 0, 0)
	fb.DrawRect(1, 1, 2, 2, c)

	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			assert.Equal(t, c, fb.GetPixel(x, y))
		}
	}
	assert.Equal(t, math3d.Zero3(), fb.GetPixel(0, 0))
	assert.Equal(t, math3d.Zero3(), fb.GetPixel(3, 3))
}

func TestFramebufferDrawLineEndpoints(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	c := math3d.V3(1, 1, 1)
	fb.DrawLine(0, 0, 4, 0, c)

	for x := 0; x <= 4; x++ {
		assert.Equal(t, c, fb.GetPixel(x, 0))
	}
}
