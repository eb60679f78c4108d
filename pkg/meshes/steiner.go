package meshes

import (
	"github.com/Faultbox/midgard-meshgen/pkg/math"
	"github.com/Faultbox/midgard-meshgen/pkg/meshdesc"
)

// SteinerGrid returns a flat x by y grid where every cell gets a center
// vertex and is split into four triangles fanning around it, making each
// center a valence-4 star.
func SteinerGrid(x, y int, cellSize float32) *meshdesc.MeshDescription {
	desc := meshdesc.New()

	var positions []math.Vec3
	var uvs []math.Vec2
	var normals []math.Vec3
	var triangles Triangles

	Init(desc, (x+1)*(y+1)+x*y, x*y*4).
		WithPositions(&positions).
		WithUVs(&uvs).
		WithNormals(&normals).
		WithTriangles(&triangles, 0)

	du := 1 / float32(x)
	dv := 1 / float32(y)

	for ix := 0; ix <= x; ix++ {
		for iy := 0; iy <= y; iy++ {
			if ix < x && iy < y {
				center := SteinerCenter(ix, iy, y)
				cx := float32(ix) + 0.5
				cy := float32(iy) + 0.5

				uvs[center] = math.Vec2{X: cx * du, Y: cy * dv}
				positions[center] = math.Vec3{X: cx * cellSize, Y: cy * cellSize}
				normals[center] = math.UnitZ

				for _, tri := range SteinerFan(ix, iy, y) {
					triangles.AddTriangle(tri[0], tri[1], tri[2])
				}
			}

			corner := SteinerCorner(ix, iy, y)
			uvs[corner] = math.Vec2{X: float32(ix) * du, Y: float32(iy) * dv}
			positions[corner] = math.Vec3{X: float32(ix) * cellSize, Y: float32(iy) * cellSize}
			normals[corner] = math.UnitZ
		}
	}

	return generated("steiner", desc)
}
