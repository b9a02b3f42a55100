// Package presenter draws a render.Framebuffer to a terminal using
// half-block characters, doubling vertical resolution relative to terminal
// rows. It and the cmd/trigon terminal loop are the only users of
// github.com/charmbracelet/ultraviolet in this module; it is kept out of
// pkg/render so the core rasterizer has no UI dependency.
package presenter

import (
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/kaelwright/trigon/pkg/math3d"
	"github.com/kaelwright/trigon/pkg/render"
)

// Draw converts fb to terminal cells and draws them into scr over area. The
// framebuffer height should be 2x the terminal row count in area.
func Draw(fb *render.Framebuffer, scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			topColor := render.Vec3ToColor(fb.GetPixel(col, topY))
			botColor := render.Vec3ToColor(fb.GetPixel(col, botY))

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: topColor,
					Bg: botColor,
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// axisGizmoLength is the world-space length of each gizmo arm, drawn
// around the mesh's own origin rather than in a fixed screen corner since
// the orbiting model has no constant on-screen anchor.
const axisGizmoLength = 1.3

// DrawAxisGizmo overlays the model's local X/Y/Z axes (red/green/blue) on
// fb, projected through cam after applying transform, as a debugging aid
// that visibly tracks the current orbit orientation. Arms that fall behind
// the camera are simply skipped.
func DrawAxisGizmo(fb *render.Framebuffer, cam *render.Camera, transform math3d.Mat4) {
	origin := transform.MulVec3(math3d.Zero3())
	ox, oy, _, originVisible := cam.WorldToScreen(origin, fb.Width, fb.Height)
	if !originVisible {
		return
	}

	arms := []struct {
		axis  math3d.Vec3
		color math3d.Vec3
	}{
		{math3d.V3(1, 0, 0), math3d.V3(1, 0, 0)},
		{math3d.V3(0, 1, 0), math3d.V3(0, 1, 0)},
		{math3d.V3(0, 0, 1), math3d.V3(0, 0, 1)},
	}

	for _, arm := range arms {
		tip := origin.Add(transform.MulVec3Dir(arm.axis).Scale(axisGizmoLength))
		x, y, _, visible := cam.WorldToScreen(tip, fb.Width, fb.Height)
		if !visible {
			continue
		}
		fb.DrawLine(int(ox), int(oy), int(x), int(y), arm.color)
	}
}
