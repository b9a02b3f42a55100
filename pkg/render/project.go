package render

import "github.com/kaelwright/trigon/pkg/math3d"

// ProjectTriangle performs the perspective divide on a clip-space triangle
// (already inside the view volume, so w > 0) and maps the result into
// viewport pixel coordinates. Position.Z is NDC depth remapped to [0,1];
// Position.W carries -w_clip, which the rasterizer needs later for
// perspective-correct attribute interpolation (see rasterizer.go).
func ProjectTriangle(tri ClipTriangle, width, height int) ScreenTriangle {
	var out ScreenTriangle
	for i, v := range tri.V {
		out.V[i] = projectVertex(v, width, height)
	}
	return out
}

func projectVertex(v ClipVertex, width, height int) ScreenVertex {
	w := v.Position.W
	ndc := v.Position.PerspectiveDivide()

	x := (ndc.X + 1) * 0.5 * float64(width)
	y := (ndc.Y + 1) * 0.5 * float64(height)
	z := (ndc.Z + 1) * 0.5

	return ScreenVertex{
		Position: math3d.V4(x, y, z, -w),
		Color:    v.Color,
	}
}
