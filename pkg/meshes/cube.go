package meshes

import (
	"github.com/Faultbox/midgard-meshgen/pkg/math"
	"github.com/Faultbox/midgard-meshgen/pkg/meshdesc"
)

// cubeFace is one side of the cube: outward normal n and in-plane axes u, v
// with u x v = n.
type cubeFace struct {
	n, u, v math.Vec3
}

var cubeFaces = [6]cubeFace{
	{n: math.Vec3{X: 1}, u: math.Vec3{Y: 1}, v: math.Vec3{Z: 1}},
	{n: math.Vec3{X: -1}, u: math.Vec3{Z: 1}, v: math.Vec3{Y: 1}},
	{n: math.Vec3{Y: 1}, u: math.Vec3{Z: 1}, v: math.Vec3{X: 1}},
	{n: math.Vec3{Y: -1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: 1}},
	{n: math.Vec3{Z: 1}, u: math.Vec3{X: 1}, v: math.Vec3{Y: 1}},
	{n: math.Vec3{Z: -1}, u: math.Vec3{Y: 1}, v: math.Vec3{X: 1}},
}

// corners returns n-u-v, n-u+v, n+u+v, n+u-v.
func (f cubeFace) corners() [4]math.Vec3 {
	return [4]math.Vec3{
		f.n.Sub(f.u).Sub(f.v),
		f.n.Sub(f.u).Add(f.v),
		f.n.Add(f.u).Add(f.v),
		f.n.Add(f.u).Sub(f.v),
	}
}

// Cube returns an axis-aligned cube spanning [-size, size] on every axis.
// Faces do not share vertices, so each keeps its own flat normal.
func Cube(size float32) *meshdesc.MeshDescription {
	desc := meshdesc.New()

	var positions []math.Vec3
	var normals []math.Vec3
	var triangles Triangles

	Init(desc, len(cubeFaces)*4, len(cubeFaces)*2).
		WithPositions(&positions).
		WithNormals(&normals).
		WithTriangles(&triangles, 0)

	index := 0
	for _, face := range cubeFaces {
		triangles.AddQuad(index, index+1, index+2, index+3)

		for _, c := range face.corners() {
			positions[index] = c.Scale(size)
			normals[index] = face.n
			index++
		}
	}

	return generated("cube", desc)
}
