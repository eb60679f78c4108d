package meshes

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-meshgen/pkg/math"
	"github.com/Faultbox/midgard-meshgen/pkg/meshdesc"
)

// Sphere returns a UV sphere centered on the origin with its poles on the
// Z axis. Each ring has 2*density vertices and there are density-1 rings.
// density must be at least 2.
func Sphere(radius float32, density int) *meshdesc.MeshDescription {
	layout := NewSphereLayout(density)
	desc := meshdesc.New()

	var positions []math.Vec3
	var normals []math.Vec3
	var triangles Triangles

	Init(desc, layout.VertexCount(), layout.TriangleCount()).
		WithPositions(&positions).
		WithNormals(&normals).
		WithTriangles(&triangles, 0)

	dv := math32.Pi / float32(layout.Parallels+1)
	dt := 2 * math32.Pi / float32(layout.Density)

	for ring := 0; ring < layout.Parallels; ring++ {
		lat := -math32.Pi/2 + float32(ring+1)*dv
		fz, horizontal := math32.Sincos(lat)

		for u := 0; u < layout.Density; u++ {
			if ring != layout.Parallels-1 {
				q := layout.Quad(ring, u)
				triangles.AddQuad(q[0], q[1], q[2], q[3])
			}

			sin, cos := math32.Sincos(float32(u) * dt)
			n := math.Vec3{X: horizontal * cos, Y: horizontal * sin, Z: fz}

			i := layout.RingIndex(ring, u)
			positions[i] = n.Scale(radius)
			normals[i] = n
		}
	}

	sPole, nPole := layout.Poles()
	positions[sPole] = math.Vec3{Z: -radius}
	normals[sPole] = math.Vec3{Z: -1}
	positions[nPole] = math.Vec3{Z: radius}
	normals[nPole] = math.UnitZ

	for u := 0; u < layout.Density; u++ {
		s, n := layout.CapTriangles(u)
		triangles.AddTriangle(s[0], s[1], s[2])
		triangles.AddTriangle(n[0], n[1], n[2])
	}

	return generated("sphere", desc)
}
