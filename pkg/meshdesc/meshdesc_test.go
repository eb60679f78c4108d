package meshdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-meshgen/pkg/math"
)

func newQuad(t *testing.T) *MeshDescription {
	t.Helper()
	m := New()
	m.ReserveNewVertices(4)
	m.ReserveNewVertexInstances(4)
	for i := 0; i < 4; i++ {
		v := m.CreateVertex()
		require.Equal(t, VertexInstanceID(i), m.CreateVertexInstance(v))
	}
	return m
}

func TestCreateSequentialIDs(t *testing.T) {
	m := newQuad(t)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.VertexInstanceCount())
	for i := 0; i < 4; i++ {
		assert.Equal(t, VertexID(i), m.InstanceVertex(VertexInstanceID(i)))
	}
	assert.Equal(t, PolygonGroupID(0), m.CreatePolygonGroup())
	assert.Equal(t, PolygonGroupID(1), m.CreatePolygonGroup())
	assert.Equal(t, 2, m.PolygonGroupCount())
}

func TestCreateTriangleKeepsWindingAndSharesEdges(t *testing.T) {
	m := newQuad(t)
	g := m.CreatePolygonGroup()

	t0 := m.CreateTriangle(g, [3]VertexInstanceID{0, 1, 3})
	t1 := m.CreateTriangle(g, [3]VertexInstanceID{3, 2, 0})

	assert.Equal(t, [3]VertexInstanceID{0, 1, 3}, m.Triangle(t0).Instances)
	assert.Equal(t, [3]VertexID{3, 2, 0}, m.TriangleVertices(t1))
	assert.Equal(t, []TriangleID{t0, t1}, m.GroupTriangles(g))
	assert.Equal(t, 2, m.TriangleCount())
	// 4 border edges plus the shared 0-3 diagonal.
	assert.Equal(t, 5, m.EdgeCount())
	for i := 0; i < m.EdgeCount(); i++ {
		e := m.Edge(EdgeID(i))
		assert.Less(t, int(e.V0), int(e.V1))
	}
}

func TestCreateTrianglePanicsOutOfRange(t *testing.T) {
	m := newQuad(t)
	g := m.CreatePolygonGroup()

	assert.Panics(t, func() { m.CreateTriangle(g, [3]VertexInstanceID{0, 1, 4}) })
	assert.Panics(t, func() { m.CreateTriangle(g, [3]VertexInstanceID{-1, 1, 2}) })
	assert.Panics(t, func() { m.CreateTriangle(g+1, [3]VertexInstanceID{0, 1, 2}) })
	assert.Panics(t, func() { m.CreateVertexInstance(9) })
}

func TestAttributeViewsAlias(t *testing.T) {
	m := newQuad(t)

	assert.False(t, m.HasNormals())
	normals := m.Normals()
	require.Len(t, normals, 4)
	assert.True(t, m.HasNormals())

	normals[2] = math.UnitZ
	assert.Equal(t, math.UnitZ, m.Normals()[2])

	positions := m.VertexPositions()
	positions[1] = math.Vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, m.VertexPositions()[1])

	m.TexCoords()[3] = math.Vec2{X: 1, Y: 1}
	m.Tangents()[0] = math.UnitX
	m.Colors()[0] = math.White
	m.BinormalSigns()[0] = -1
	assert.Equal(t, math.Vec2{X: 1, Y: 1}, m.TexCoords()[3])
	assert.Equal(t, math.UnitX, m.Tangents()[0])
	assert.Equal(t, math.White, m.Colors()[0])
	assert.Equal(t, float32(-1), m.BinormalSigns()[0])
	assert.True(t, m.HasTexCoords())
	assert.True(t, m.HasTangents())
	assert.True(t, m.HasColors())
	assert.True(t, m.HasBinormalSigns())
}

func TestRegisteredChannelGrowsWithInstances(t *testing.T) {
	m := New()
	m.Colors()
	v := m.CreateVertex()
	m.CreateVertexInstance(v)
	m.CreateVertexInstance(v)
	assert.Len(t, m.Colors(), 2)
	assert.Len(t, m.Normals(), 2)
}

func TestReserveKeepsCounts(t *testing.T) {
	m := New()
	m.ReserveNewVertices(10)
	m.ReserveNewVertexInstances(10)
	m.ReserveNewTriangles(10)
	m.ReserveNewEdges(30)
	assert.Zero(t, m.VertexCount())
	assert.Zero(t, m.VertexInstanceCount())
	assert.Zero(t, m.TriangleCount())
	assert.Zero(t, m.EdgeCount())
}

func TestBounds(t *testing.T) {
	assert.Equal(t, Bounds{}, New().Bounds())

	m := newQuad(t)
	p := m.VertexPositions()
	p[0] = math.Vec3{X: -1, Y: 2, Z: 0}
	p[1] = math.Vec3{X: 3, Y: -4, Z: 1}
	p[2] = math.Vec3{X: 0, Y: 0, Z: -2}
	p[3] = math.Vec3{X: 1, Y: 1, Z: 1}

	b := m.Bounds()
	assert.Equal(t, math.Vec3{X: -1, Y: -4, Z: -2}, b.Min)
	assert.Equal(t, math.Vec3{X: 3, Y: 2, Z: 1}, b.Max)
	assert.Equal(t, math.Vec3{X: 4, Y: 6, Z: 3}, b.Size())
}
