package meshes

import (
	"github.com/Faultbox/midgard-meshgen/pkg/math"
	"github.com/Faultbox/midgard-meshgen/pkg/meshdesc"
)

// SimpleQuad returns a 200x200 quad in the XY plane facing +Z.
func SimpleQuad() *meshdesc.MeshDescription {
	desc := meshdesc.New()

	var positions []math.Vec3
	var uvs []math.Vec2
	var normals []math.Vec3
	var triangles Triangles

	Init(desc, 4, 2).
		WithPositions(&positions).
		WithUVs(&uvs).
		WithNormals(&normals).
		WithTriangles(&triangles, 0)

	positions[0] = math.Vec3{X: -100, Y: -100}
	positions[1] = math.Vec3{X: -100, Y: 100}
	positions[2] = math.Vec3{X: 100, Y: -100}
	positions[3] = math.Vec3{X: 100, Y: 100}

	for i := range normals {
		normals[i] = math.UnitZ
	}

	uvs[0] = math.Vec2{X: 0, Y: 0}
	uvs[1] = math.Vec2{X: 0, Y: 1}
	uvs[2] = math.Vec2{X: 1, Y: 0}
	uvs[3] = math.Vec2{X: 1, Y: 1}

	// Corners 2 and 3 are swapped so the quad walks the perimeter:
	// this emits (0,1,3) and (3,2,0).
	triangles.AddQuad(0, 1, 3, 2)

	return generated("quad", desc)
}
