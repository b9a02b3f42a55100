// Package render implements the software triangle-rasterization pipeline:
// vertex transform, homogeneous clipping, perspective projection and
// scanline rasterization with a z-buffer.
package render

import (
	"math"

	"github.com/kaelwright/trigon/pkg/math3d"
)

// degenerateThreshold is the minimum absolute value of the cross-product
// edge function (twice the signed area, in pixel^2) below which a triangle is treated
// as degenerate and skipped rather than risking a divide-by-near-zero in
// the barycentric computation.
const degenerateThreshold = 0.01

// edgeFunction returns twice the signed area of triangle (a, b, c); its sign
// indicates which side of the directed edge a->b the point c falls on.
func edgeFunction(a, b, c math3d.Vec4) float64 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

// RasterizeTriangle fills fb with the interior pixels of a screen-space
// triangle, depth-testing and writing each covered pixel via fb's z-buffer.
// The signed area only determines the normalization of the barycentric
// weights below (dividing each sub-area by the same signed total cancels
// the sign out), so triangles of either screen-space winding fill
// identically; no backface culling happens here.
func RasterizeTriangle(tri ScreenTriangle, fb *Framebuffer) {
	p0, p1, p2 := tri.V[0].Position, tri.V[1].Position, tri.V[2].Position

	area := edgeFunction(p0, p1, p2)
	if math.Abs(area) < degenerateThreshold {
		return
	}

	minX := int(math.Max(0, math.Floor(min3(p0.X, p1.X, p2.X))))
	maxX := int(math.Min(float64(fb.Width-1), math.Ceil(max3(p0.X, p1.X, p2.X))))
	minY := int(math.Max(0, math.Floor(min3(p0.Y, p1.Y, p2.Y))))
	maxY := int(math.Min(float64(fb.Height-1), math.Ceil(max3(p0.Y, p1.Y, p2.Y))))

	invArea := 1.0 / area

	// pv/denom perspective-corrects attributes that are not affine in screen
	// space (color). NDC depth (p.Z) is already affine in screen space for a
	// perspective projection, so it interpolates directly off the plain
	// barycentric weights without this correction.
	wA, wB, wC := p0.W, p1.W, p2.W
	pv := math3d.V3(wB*wC, wA*wC, wA*wB)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			sample := math3d.V4(px, py, 0, 0)

			w0 := edgeFunction(p1, p2, sample) * invArea
			w1 := edgeFunction(p2, p0, sample) * invArea
			w2 := edgeFunction(p0, p1, sample) * invArea

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			bary := math3d.V3(w0, w1, w2)

			depth := bary.X*p0.Z + bary.Y*p1.Z + bary.Z*p2.Z
			if !fb.TestAndSetDepth(x, y, depth) {
				continue
			}

			denom := pv.Dot(bary)
			if denom == 0 {
				continue
			}
			persp := math3d.V3(pv.X*bary.X, pv.Y*bary.Y, pv.Z*bary.Z).Scale(1.0 / denom)

			color := tri.V[0].Color.Scale(persp.X).
				Add(tri.V[1].Color.Scale(persp.Y)).
				Add(tri.V[2].Color.Scale(persp.Z))

			fb.SetPixel(x, y, color)
		}
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
