package meshes

import "github.com/Faultbox/midgard-meshgen/pkg/meshdesc"

// Triangles emits triangles into one polygon group of a description.
// Indices are not checked here; the description panics on bad ones.
type Triangles struct {
	desc  *meshdesc.MeshDescription
	group meshdesc.PolygonGroupID
}

// Init binds the emitter to group of desc.
func (t *Triangles) Init(desc *meshdesc.MeshDescription, group meshdesc.PolygonGroupID) {
	t.desc = desc
	t.group = group
}

// Group returns the bound polygon group.
func (t *Triangles) Group() meshdesc.PolygonGroupID {
	return t.group
}

// AddTriangle emits (v0, v1, v2) with exactly that winding.
func (t *Triangles) AddTriangle(v0, v1, v2 int) {
	t.desc.CreateTriangle(t.group, [3]meshdesc.VertexInstanceID{
		meshdesc.VertexInstanceID(v0),
		meshdesc.VertexInstanceID(v1),
		meshdesc.VertexInstanceID(v2),
	})
}

// AddQuad splits the quad v0..v3 along the v0-v2 diagonal. Corners must be
// given in winding order so that diagonal lies inside the quad.
func (t *Triangles) AddQuad(v0, v1, v2, v3 int) {
	t.AddTriangle(v0, v1, v2)
	t.AddTriangle(v2, v3, v0)
}

// AddHex emits the hexagon v0..v5 as quads (v0,v1,v2,v3) and (v3,v4,v5,v0).
func (t *Triangles) AddHex(v0, v1, v2, v3, v4, v5 int) {
	t.AddQuad(v0, v1, v2, v3)
	t.AddQuad(v3, v4, v5, v0)
}
