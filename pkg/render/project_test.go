package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaelwright/trigon/pkg/math3d"
)

// TestProjectTriangleCentersOrigin verifies a clip-space point at the origin
// maps to the center of the viewport.
func TestProjectTriangleCentersOrigin(t *testing.T) {
	tri := ClipTriangle{V: [3]ClipVertex{
		{Position: math3d.V4(0, 0, 0, 1), Color: math3d.V3(1, 0, 0)},
		{Position: math3d.V4(0, 0, 0, 1), Color: math3d.V3(0, 1, 0)},
		{Position: math3d.V4(0, 0, 0, 1), Color: math3d.V3(0, 0, 1)},
	}}

	screen := ProjectTriangle(tri, 200, 100)

	assert.InDelta(t, 100, screen.V[0].Position.X, 1e-9)
	assert.InDelta(t, 50, screen.V[0].Position.Y, 1e-9)
	assert.InDelta(t, 0.5, screen.V[0].Position.Z, 1e-9)
}

// TestProjectTriangleCorners verifies the four NDC extremes map to the four
// viewport corners. Both axes map without a sign flip (screen.y = (NDC.y+1)
// * H/2), so NDC(-1,-1) lands at screen (0,0) and NDC(1,1) at (W,H).
func TestProjectTriangleCorners(t *testing.T) {
	width, height := 640, 480

	corners := []struct {
		ndc      math3d.Vec4
		wantX    float64
		wantY    float64
		wantDesc string
	}{
		{math3d.V4(-1, -1, -1, 1), 0, 0, "bottom-left in NDC"},
		{math3d.V4(1, -1, -1, 1), float64(width), 0, "bottom-right in NDC"},
		{math3d.V4(-1, 1, -1, 1), 0, float64(height), "top-left in NDC"},
		{math3d.V4(1, 1, -1, 1), float64(width), float64(height), "top-right in NDC"},
	}

	for _, c := range corners {
		v := projectVertex(ClipVertex{Position: c.ndc}, width, height)
		assert.InDelta(t, c.wantX, v.Position.X, 1e-9, c.wantDesc)
		assert.InDelta(t, c.wantY, v.Position.Y, 1e-9, c.wantDesc)
	}
}

// TestProjectVertexCarriesNegatedW verifies the projected vertex's W field
// stores -w_clip, as the rasterizer's perspective-correction math depends on.
func TestProjectVertexCarriesNegatedW(t *testing.T) {
	v := projectVertex(ClipVertex{Position: math3d.V4(0, 0, 0, 2.5)}, 100, 100)
	assert.InDelta(t, -2.5, v.Position.W, 1e-9)
}

// TestProjectTrianglePreservesColor verifies color passes through the
// perspective divide unchanged.
func TestProjectTrianglePreservesColor(t *testing.T) {
	want := math3d.V3(0.25, 0.5, 0.75)
	tri := ClipTriangle{V: [3]ClipVertex{
		{Position: math3d.V4(0, 0, 0, 1), Color: want},
		{Position: math3d.V4(0.1, 0, 0, 1), Color: want},
		{Position: math3d.V4(0, 0.1, 0, 1), Color: want},
	}}

	screen := ProjectTriangle(tri, 100, 100)
	for _, v := range screen.V {
		assert.Equal(t, want, v.Color)
	}
}
