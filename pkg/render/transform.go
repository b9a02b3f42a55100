package render

import "github.com/kaelwright/trigon/pkg/math3d"

// TransformTriangle applies the combined model-view-projection matrix to a
// model-space triangle, producing its clip-space equivalent. Colors pass
// through unchanged; only position moves from model space to clip space.
func TransformTriangle(tri Triangle, mvp math3d.Mat4) ClipTriangle {
	var out ClipTriangle
	for i, v := range tri.V {
		out.V[i] = ClipVertex{
			Position: mvp.MulVec4(math3d.V4FromV3(v.Position, 1)),
			Color:    v.Color,
		}
	}
	return out
}
