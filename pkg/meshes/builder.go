// Package meshes generates procedural mesh geometry (quads, grids, cubes and
// spheres) into a meshdesc.MeshDescription.
//
// Every generator computes its vertex and triangle counts up front, reserves
// them through Init, writes each attribute slot through views that alias the
// description's storage, and emits triangles through a Triangles emitter.
package meshes

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-meshgen/internal/logger"
	"github.com/Faultbox/midgard-meshgen/pkg/math"
	"github.com/Faultbox/midgard-meshgen/pkg/meshdesc"
)

// Builder hands out attribute views of a freshly initialized description.
type Builder struct {
	desc  *meshdesc.MeshDescription
	group meshdesc.PolygonGroupID
}

// Init reserves room for vertices and triangles in desc, creates polygon
// group 0 and one vertex instance per vertex. desc is expected to be empty;
// views returned by the builder cover the whole description.
func Init(desc *meshdesc.MeshDescription, vertices, triangles int) *Builder {
	desc.ReserveNewVertices(vertices)
	desc.ReserveNewVertexInstances(vertices)

	group := desc.CreatePolygonGroup()
	desc.ReserveNewTriangles(triangles)
	desc.ReserveNewEdges(triangles * 3)

	for v := 0; v < vertices; v++ {
		desc.CreateVertexInstance(desc.CreateVertex())
	}

	logger.Debug("mesh buffers reserved",
		zap.Int("vertices", vertices),
		zap.Int("triangles", triangles),
	)

	return &Builder{desc: desc, group: group}
}

// WithPositions points positions at the vertex position storage.
func (b *Builder) WithPositions(positions *[]math.Vec3) *Builder {
	*positions = b.desc.VertexPositions()
	return b
}

// WithUVs points uvs at the texture coordinate storage.
func (b *Builder) WithUVs(uvs *[]math.Vec2) *Builder {
	*uvs = b.desc.TexCoords()
	return b
}

// WithNormals points normals at the normal storage.
func (b *Builder) WithNormals(normals *[]math.Vec3) *Builder {
	*normals = b.desc.Normals()
	return b
}

// WithTangents points tangents at the tangent storage.
func (b *Builder) WithTangents(tangents *[]math.Vec3) *Builder {
	*tangents = b.desc.Tangents()
	return b
}

// WithColors points colors at the vertex color storage.
func (b *Builder) WithColors(colors *[]math.Vec4) *Builder {
	*colors = b.desc.Colors()
	return b
}

// WithBinormalSigns points signs at the binormal sign storage.
func (b *Builder) WithBinormalSigns(signs *[]float32) *Builder {
	*signs = b.desc.BinormalSigns()
	return b
}

// WithTriangles binds t to group. Passing meshdesc.InvalidPolygonGroupID
// binds it to a new group instead.
func (b *Builder) WithTriangles(t *Triangles, group meshdesc.PolygonGroupID) *Builder {
	if group == meshdesc.InvalidPolygonGroupID {
		group = b.desc.CreatePolygonGroup()
	}
	t.Init(b.desc, group)
	return b
}

// Description returns the description being built.
func (b *Builder) Description() *meshdesc.MeshDescription {
	return b.desc
}

// DefaultGroup returns the group created by Init.
func (b *Builder) DefaultGroup() meshdesc.PolygonGroupID {
	return b.group
}
