package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaelwright/trigon/pkg/math3d"
)

// TestRasterizeTrianglePerspectiveCorrectness verifies the worked example of
// clip w={1,1,4}: the color at a fixed screen pixel is weighted by 1/w, not
// by the plain screen-space barycentric fraction. The triangle is built
// directly in screen space (bypassing ProjectTriangle) so the expected
// perspective weights can be computed by hand from the edge-function
// barycentrics.
func TestRasterizeTrianglePerspectiveCorrectness(t *testing.T) {
	fb := NewFramebuffer(4, 4)

	tri := ScreenTriangle{V: [3]ScreenVertex{
		{Position: math3d.V4(0, 0, 0, -1), Color: math3d.V3(1, 0, 0)},
		{Position: math3d.V4(0, 4, 0, -1), Color: math3d.V3(0, 1, 0)},
		{Position: math3d.V4(4, 0, 0, -4), Color: math3d.V3(0, 0, 1)},
	}}

	RasterizeTriangle(tri, fb)

	// Plain (non-perspective-corrected) barycentric weights at pixel (1,1),
	// sample point (1.5, 1.5), computed by hand from the edge function:
	// wA=0.25, wB=0.375, wC=0.375.
	// pv = (wB*wC, wA*wC, wA*wB) using the stored -w values (-1,-1,-4):
	// pv = (4, 4, 1); denom = pv . bary = 2.875.
	// perspective-correct weights: (0.347826..., 0.521739..., 0.130435...)
	want := math3d.V3(1, 0, 0).Scale(0.3478260869565217).
		Add(math3d.V3(0, 1, 0).Scale(0.5217391304347826)).
		Add(math3d.V3(0, 0, 1).Scale(0.13043478260869565))

	got := fb.GetPixel(1, 1)
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
	assert.InDelta(t, want.Z, got.Z, 1e-9)

	// The naive, non-perspective-corrected average would be (0.25, 0.375,
	// 0.375) dotted with the colors; confirm the actual result is not that.
	plain := math3d.V3(1, 0, 0).Scale(0.25).
		Add(math3d.V3(0, 1, 0).Scale(0.375)).
		Add(math3d.V3(0, 0, 1).Scale(0.375))
	assert.NotEqual(t, plain, got)
}

// TestRasterizeTriangleDepthOrdering verifies that of two triangles
// rasterized directly into the same framebuffer region, at depths 0.3 and
// 0.7, the nearer (0.3) triangle's color wins regardless of submission
// order.
func TestRasterizeTriangleDepthOrdering(t *testing.T) {
	near := ScreenTriangle{V: [3]ScreenVertex{
		{Position: math3d.V4(0, 0, 0.3, -1), Color: math3d.V3(0, 1, 0)},
		{Position: math3d.V4(0, 8, 0.3, -1), Color: math3d.V3(0, 1, 0)},
		{Position: math3d.V4(8, 0, 0.3, -1), Color: math3d.V3(0, 1, 0)},
	}}
	far := ScreenTriangle{V: [3]ScreenVertex{
		{Position: math3d.V4(0, 0, 0.7, -1), Color: math3d.V3(1, 0, 0)},
		{Position: math3d.V4(0, 8, 0.7, -1), Color: math3d.V3(1, 0, 0)},
		{Position: math3d.V4(8, 0, 0.7, -1), Color: math3d.V3(1, 0, 0)},
	}}

	fbFarFirst := NewFramebuffer(8, 8)
	RasterizeTriangle(far, fbFarFirst)
	RasterizeTriangle(near, fbFarFirst)

	fbNearFirst := NewFramebuffer(8, 8)
	RasterizeTriangle(near, fbNearFirst)
	RasterizeTriangle(far, fbNearFirst)

	want := math3d.V3(0, 1, 0)
	got1 := fbFarFirst.GetPixel(2, 2)
	got2 := fbNearFirst.GetPixel(2, 2)
	assert.Equal(t, want, got1, "nearer triangle should win regardless of submission order")
	assert.Equal(t, got1, got2, "result must not depend on rasterization order")
}

// TestProjectVertexViewportMapping verifies the worked viewport-mapping
// example: projectVertex maps a clip-space point (0,0,0,1) with W=800,H=600
// to screen (400, 300, 0.5).
func TestProjectVertexViewportMapping(t *testing.T) {
	tri := ClipTriangle{V: [3]ClipVertex{
		{Position: math3d.V4(0, 0, 0, 1)},
	}}
	v := projectVertex(tri.V[0], 800, 600)

	assert.InDelta(t, 400, v.Position.X, 1e-9)
	assert.InDelta(t, 300, v.Position.Y, 1e-9)
	assert.InDelta(t, 0.5, v.Position.Z, 1e-9)
}

// TestRasterizeTriangleDegenerateSkipsAllPixels verifies a triangle whose 2D
// cross product is near zero (a sliver with no area) draws nothing.
func TestRasterizeTriangleDegenerateSkipsAllPixels(t *testing.T) {
	fb := NewFramebuffer(8, 8)

	sliver := ScreenTriangle{V: [3]ScreenVertex{
		{Position: math3d.V4(0, 0, 0, -1), Color: math3d.V3(1, 1, 1)},
		{Position: math3d.V4(4, 0, 0, -1), Color: math3d.V3(1, 1, 1)},
		{Position: math3d.V4(4.0001, 0.0001, 0, -1), Color: math3d.V3(1, 1, 1)},
	}}

	RasterizeTriangle(sliver, fb)

	for _, c := range fb.Color {
		assert.Equal(t, math3d.Zero3(), c)
	}
}
