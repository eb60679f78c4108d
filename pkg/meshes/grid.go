package meshes

import (
	"github.com/Faultbox/midgard-meshgen/pkg/math"
	"github.com/Faultbox/midgard-meshgen/pkg/meshdesc"
)

// Grid returns a flat x by y grid of quads in the XY plane facing +Z.
//
// Texture coordinates are ix/(x-1) and iy/(y-1), so the last column and row
// fall outside [0,1] and positions (u*x*cellSize, v*y*cellSize) reach past
// x*cellSize. Consumers may depend on this layout; it is kept as is.
func Grid(x, y int, cellSize float32) *meshdesc.MeshDescription {
	desc := meshdesc.New()

	var positions []math.Vec3
	var uvs []math.Vec2
	var normals []math.Vec3
	var triangles Triangles

	Init(desc, (x+1)*(y+1), x*y*2).
		WithPositions(&positions).
		WithUVs(&uvs).
		WithNormals(&normals).
		WithTriangles(&triangles, 0)

	width := float32(x) * cellSize
	height := float32(y) * cellSize

	for ix := 0; ix <= x; ix++ {
		for iy := 0; iy <= y; iy++ {
			if ix < x && iy < y {
				c := GridCell(ix, iy, y)
				triangles.AddQuad(c[0], c[1], c[2], c[3])
			}

			u := float32(ix) / float32(x-1)
			v := float32(iy) / float32(y-1)

			i := GridIndex(ix, iy, y)
			uvs[i] = math.Vec2{X: u, Y: v}
			positions[i] = math.Vec3{X: u * width, Y: v * height}
			normals[i] = math.UnitZ
		}
	}

	return generated("grid", desc)
}
