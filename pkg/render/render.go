package render

import "github.com/kaelwright/trigon/pkg/math3d"

// Render draws triangles into fb: each triangle is transformed by the
// combined model-view-projection matrix, clipped against the view volume,
// re-triangulated, perspective-divided into viewport pixels, and
// rasterized with a z-buffer test. fb's depth buffer is not cleared here;
// call fb.Clear before the first Render of a frame.
func Render(triangles []Triangle, model, view, proj math3d.Mat4, fb *Framebuffer) {
	mvp := proj.Mul(view).Mul(model)

	for _, tri := range triangles {
		clipped := TransformTriangle(tri, mvp)
		for _, ct := range ClipAndTriangulate(clipped) {
			screen := ProjectTriangle(ct, fb.Width, fb.Height)
			RasterizeTriangle(screen, fb)
		}
	}
}
