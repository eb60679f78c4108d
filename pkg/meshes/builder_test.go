package meshes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-meshgen/pkg/math"
	"github.com/Faultbox/midgard-meshgen/pkg/meshdesc"
)

func TestInitCreatesVertices(t *testing.T) {
	desc := meshdesc.New()
	b := Init(desc, 5, 3)

	assert.Same(t, desc, b.Description())
	assert.Equal(t, 5, desc.VertexCount())
	assert.Equal(t, 5, desc.VertexInstanceCount())
	assert.Equal(t, 1, desc.PolygonGroupCount())
	assert.Equal(t, meshdesc.PolygonGroupID(0), b.DefaultGroup())
	assert.Zero(t, desc.TriangleCount())
	for i := 0; i < 5; i++ {
		assert.Equal(t, meshdesc.VertexID(i), desc.InstanceVertex(meshdesc.VertexInstanceID(i)))
	}
}

func TestBuilderViews(t *testing.T) {
	desc := meshdesc.New()

	var (
		positions []math.Vec3
		uvs       []math.Vec2
		normals   []math.Vec3
		tangents  []math.Vec3
		colors    []math.Vec4
		signs     []float32
		triangles Triangles
	)

	// Order of the With calls does not matter.
	Init(desc, 3, 1).
		WithBinormalSigns(&signs).
		WithColors(&colors).
		WithTriangles(&triangles, 0).
		WithTangents(&tangents).
		WithNormals(&normals).
		WithUVs(&uvs).
		WithPositions(&positions)

	require.Len(t, positions, 3)
	require.Len(t, uvs, 3)
	require.Len(t, normals, 3)
	require.Len(t, tangents, 3)
	require.Len(t, colors, 3)
	require.Len(t, signs, 3)

	positions[2] = math.Vec3{X: 1, Y: 2, Z: 3}
	uvs[1] = math.Vec2{X: 0.5, Y: 0.25}
	normals[0] = math.UnitZ
	tangents[0] = math.UnitX
	colors[2] = math.White
	signs[1] = -1

	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, desc.VertexPositions()[2])
	assert.Equal(t, math.Vec2{X: 0.5, Y: 0.25}, desc.TexCoords()[1])
	assert.Equal(t, math.UnitZ, desc.Normals()[0])
	assert.Equal(t, math.UnitX, desc.Tangents()[0])
	assert.Equal(t, math.White, desc.Colors()[2])
	assert.Equal(t, float32(-1), desc.BinormalSigns()[1])

	triangles.AddTriangle(0, 1, 2)
	assert.Equal(t, []meshdesc.TriangleID{0}, desc.GroupTriangles(0))
}

func TestWithTrianglesNewGroup(t *testing.T) {
	desc := meshdesc.New()
	var first, second Triangles

	Init(desc, 3, 2).
		WithTriangles(&first, 0).
		WithTriangles(&second, meshdesc.InvalidPolygonGroupID)

	assert.Equal(t, meshdesc.PolygonGroupID(0), first.Group())
	assert.Equal(t, meshdesc.PolygonGroupID(1), second.Group())

	first.AddTriangle(0, 1, 2)
	second.AddTriangle(2, 1, 0)
	assert.Equal(t, meshdesc.PolygonGroupID(0), desc.Triangle(0).Group)
	assert.Equal(t, meshdesc.PolygonGroupID(1), desc.Triangle(1).Group)
}
