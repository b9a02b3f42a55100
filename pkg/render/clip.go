package render

import "github.com/kaelwright/trigon/pkg/math3d"

// maxClippedVertices is the maximum number of vertices a clipped triangle can
// produce: clipping against six planes can add at most one vertex per plane
// crossing, for a geometric maximum of 9; the scratch buffers are sized to 12
// for safety margin.
const maxClippedVertices = 12

// axis identifies which clip-space component a plane tests.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// component reads the clip-space x, y or z coordinate named by a.
func (a axis) component(p math3d.Vec4) float64 {
	switch a {
	case axisX:
		return p.X
	case axisY:
		return p.Y
	default:
		return p.Z
	}
}

// plane is one of the six half-spaces of the canonical homogeneous view
// volume: {(x,y,z,w) : -w <= x,y,z <= w, w > 0}.
type plane struct {
	axis     axis
	positive bool // true: c <= w ("positive" plane); false: c >= -w ("negative" plane)
}

// the six clip planes, in the fixed order the general path clips against.
var clipPlanes = [6]plane{
	{axisX, true}, {axisX, false},
	{axisY, true}, {axisY, false},
	{axisZ, true}, {axisZ, false},
}

// inside reports whether the clip-space position p satisfies the plane's
// half-space.
func (p plane) inside(pos math3d.Vec4) bool {
	c := p.axis.component(pos)
	if p.positive {
		return c <= pos.W
	}
	return c >= -pos.W
}

// intersectParam computes t in [0,1], the point along the edge from clip
// position a to clip position b at which it crosses the plane. The
// denominator is nonzero whenever a and b are on opposite sides of the
// plane, which is the only case this is called.
func (p plane) intersectParam(a, b math3d.Vec4) float64 {
	pA, wA := p.axis.component(a), a.W
	pB, wB := p.axis.component(b), b.W

	if p.positive {
		return (wA - pA) / (pB - wB + wA - pA)
	}
	return -(wA + pA) / (pB - pA + wB - wA)
}

// clipAgainstPlane clips a closed polygon (in[0..n-1], with an implicit edge
// from in[n-1] back to in[0]) against a single plane using the
// Sutherland-Hodgman algorithm, writing the result into out and returning its
// length. out must have capacity for at least n+1 vertices.
func clipAgainstPlane[T clippable[T]](p plane, in []T, out []T) int {
	n := len(in)
	if n == 0 {
		return 0
	}

	outCount := 0
	a := in[0]
	aIn := p.inside(a.ClipPosition())

	for i := 1; i <= n; i++ {
		b := in[i%n]
		bIn := p.inside(b.ClipPosition())

		if aIn {
			out[outCount] = a
			outCount++
		}
		if aIn != bIn {
			t := p.intersectParam(a.ClipPosition(), b.ClipPosition())
			out[outCount] = a.Lerp(b, t)
			outCount++
		}

		a, aIn = b, bIn
	}

	return outCount
}

// insideFastPath is the shortcut inside test from spec: |x|<=|w|, |y|<=|w|,
// and both z-plane conditions. It is used only as an inside test (to detect
// the common case where a triangle needs no clipping at all), never as an
// outside test -- the general Sutherland-Hodgman loop above is authoritative
// for anything this shortcut doesn't accept.
func insideFastPath(pos math3d.Vec4) bool {
	absW := pos.W
	if absW < 0 {
		absW = -absW
	}
	return pos.X <= absW && pos.X >= -absW &&
		pos.Y <= absW && pos.Y >= -absW &&
		clipPlanes[4].inside(pos) && clipPlanes[5].inside(pos)
}

// ClipToPolygon clips a single clip-space triangle against the six planes of
// the canonical view volume and returns the resulting convex polygon's
// vertices (0, or 3..12 of them) written into out, which must have capacity
// for at least maxClippedVertices. It returns the vertex count.
func ClipToPolygon(tri ClipTriangle, out *[maxClippedVertices]ClipVertex) int {
	if insideFastPath(tri.V[0].Position) &&
		insideFastPath(tri.V[1].Position) &&
		insideFastPath(tri.V[2].Position) {
		out[0], out[1], out[2] = tri.V[0], tri.V[1], tri.V[2]
		return 3
	}

	var a, b [maxClippedVertices]ClipVertex
	a[0], a[1], a[2] = tri.V[0], tri.V[1], tri.V[2]
	count := 3

	src, dst := a[:], b[:]
	for _, p := range clipPlanes {
		count = clipAgainstPlane(p, src[:count], dst)
		if count == 0 {
			return 0
		}
		src, dst = dst, src
	}

	copy(out[:count], src[:count])
	return count
}

// triangulateFan converts a clipped convex N-gon into a fan of N-2
// triangles: {(V[0], V[j], V[j+1]) : 1 <= j <= N-2}. The input polygon is
// convex because it is produced by clipping a triangle against half-spaces,
// so fan triangulation from V[0] is sufficient and preserves winding.
func triangulateFan(poly []ClipVertex) []ClipTriangle {
	if len(poly) < 3 {
		return nil
	}
	out := make([]ClipTriangle, 0, len(poly)-2)
	for j := 1; j < len(poly)-1; j++ {
		out = append(out, ClipTriangle{V: [3]ClipVertex{poly[0], poly[j], poly[j+1]}})
	}
	return out
}

// ClipAndTriangulate clips tri and re-triangulates the result into zero or
// more output triangles, preserving winding order.
func ClipAndTriangulate(tri ClipTriangle) []ClipTriangle {
	var scratch [maxClippedVertices]ClipVertex
	n := ClipToPolygon(tri, &scratch)
	return triangulateFan(scratch[:n])
}
