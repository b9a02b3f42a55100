package main

import (
	"github.com/kaelwright/trigon/pkg/models"
	"github.com/kaelwright/trigon/pkg/render"
)

// meshTriangles flattens a loaded mesh's indexed faces into the flat
// triangle list render.Render consumes.
func meshTriangles(mesh *models.Mesh) []render.Triangle {
	tris := make([]render.Triangle, len(mesh.Faces))
	for i, f := range mesh.Faces {
		for j, idx := range f.V {
			v := mesh.Vertices[idx]
			tris[i].V[j] = render.InputVertex{
				Position: v.Position,
				Color:    v.Color,
			}
		}
	}
	return tris
}
