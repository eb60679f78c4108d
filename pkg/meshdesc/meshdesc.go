// Package meshdesc provides the mesh description container that generators
// write into: vertex, vertex instance, edge, triangle and polygon group
// registries plus the attribute channels that hang off them.
//
// Attribute accessors return slices that alias the container's storage.
// A slice obtained before more vertices or vertex instances are created may
// stop aliasing once the backing array grows, so callers create every
// element first and take views afterwards.
package meshdesc

import (
	"fmt"

	"github.com/Faultbox/midgard-meshgen/pkg/math"
)

// VertexID identifies a vertex.
type VertexID int32

// VertexInstanceID identifies a vertex instance.
type VertexInstanceID int32

// EdgeID identifies an edge.
type EdgeID int32

// TriangleID identifies a triangle.
type TriangleID int32

// PolygonGroupID identifies a polygon group.
type PolygonGroupID int32

// InvalidPolygonGroupID is never assigned to a group.
const InvalidPolygonGroupID PolygonGroupID = -1

// Edge is an undirected connection between two vertices. V0 < V1.
type Edge struct {
	V0, V1 VertexID
}

// Triangle is an ordered triple of vertex instances in the polygon group
// it was created in.
type Triangle struct {
	Instances [3]VertexInstanceID
	Group     PolygonGroupID
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// MeshDescription stores mesh topology and attributes.
// The zero value is an empty mesh ready for use.
type MeshDescription struct {
	positions []math.Vec3

	instanceVertex []VertexID

	texCoords     []math.Vec2
	normals       []math.Vec3
	tangents      []math.Vec3
	colors        []math.Vec4
	binormalSigns []float32
	registered    channelSet

	edges     []Edge
	edgeIndex map[Edge]EdgeID

	triangles []Triangle
	groups    [][]TriangleID
}

type channelSet uint8

const (
	channelTexCoord channelSet = 1 << iota
	channelNormal
	channelTangent
	channelColor
	channelBinormalSign
)

// New returns an empty mesh description.
func New() *MeshDescription {
	return &MeshDescription{}
}

// ReserveNewVertices grows capacity for n more vertices.
func (m *MeshDescription) ReserveNewVertices(n int) {
	m.positions = grow(m.positions, n)
}

// ReserveNewVertexInstances grows capacity for n more vertex instances in
// the instance registry and every registered channel.
func (m *MeshDescription) ReserveNewVertexInstances(n int) {
	m.instanceVertex = grow(m.instanceVertex, n)
	if m.registered&channelTexCoord != 0 {
		m.texCoords = grow(m.texCoords, n)
	}
	if m.registered&channelNormal != 0 {
		m.normals = grow(m.normals, n)
	}
	if m.registered&channelTangent != 0 {
		m.tangents = grow(m.tangents, n)
	}
	if m.registered&channelColor != 0 {
		m.colors = grow(m.colors, n)
	}
	if m.registered&channelBinormalSign != 0 {
		m.binormalSigns = grow(m.binormalSigns, n)
	}
}

// ReserveNewTriangles grows capacity for n more triangles.
func (m *MeshDescription) ReserveNewTriangles(n int) {
	m.triangles = grow(m.triangles, n)
}

// ReserveNewEdges grows capacity for n more edges.
func (m *MeshDescription) ReserveNewEdges(n int) {
	m.edges = grow(m.edges, n)
	if m.edgeIndex == nil {
		m.edgeIndex = make(map[Edge]EdgeID, n)
	}
}

// CreateVertex adds a vertex at the origin.
func (m *MeshDescription) CreateVertex() VertexID {
	id := VertexID(len(m.positions))
	m.positions = append(m.positions, math.Vec3{})
	return id
}

// CreateVertexInstance adds an instance of vertex v. Every registered
// instance channel gets a zero value for it.
func (m *MeshDescription) CreateVertexInstance(v VertexID) VertexInstanceID {
	if v < 0 || int(v) >= len(m.positions) {
		panic(fmt.Sprintf("meshdesc: vertex %d out of range [0,%d)", v, len(m.positions)))
	}
	id := VertexInstanceID(len(m.instanceVertex))
	m.instanceVertex = append(m.instanceVertex, v)
	if m.registered&channelTexCoord != 0 {
		m.texCoords = append(m.texCoords, math.Vec2{})
	}
	if m.registered&channelNormal != 0 {
		m.normals = append(m.normals, math.Vec3{})
	}
	if m.registered&channelTangent != 0 {
		m.tangents = append(m.tangents, math.Vec3{})
	}
	if m.registered&channelColor != 0 {
		m.colors = append(m.colors, math.Vec4{})
	}
	if m.registered&channelBinormalSign != 0 {
		m.binormalSigns = append(m.binormalSigns, 0)
	}
	return id
}

// CreatePolygonGroup adds an empty polygon group.
func (m *MeshDescription) CreatePolygonGroup() PolygonGroupID {
	id := PolygonGroupID(len(m.groups))
	m.groups = append(m.groups, nil)
	return id
}

// CreateTriangle records a triangle in group with the winding given by
// instances. Edges between the underlying vertices are created on first
// use. Unknown groups or instances are programmer errors and panic.
func (m *MeshDescription) CreateTriangle(group PolygonGroupID, instances [3]VertexInstanceID) TriangleID {
	if group < 0 || int(group) >= len(m.groups) {
		panic(fmt.Sprintf("meshdesc: polygon group %d out of range [0,%d)", group, len(m.groups)))
	}
	var verts [3]VertexID
	for i, vi := range instances {
		if vi < 0 || int(vi) >= len(m.instanceVertex) {
			panic(fmt.Sprintf("meshdesc: vertex instance %d out of range [0,%d)", vi, len(m.instanceVertex)))
		}
		verts[i] = m.instanceVertex[vi]
	}

	for i := range verts {
		m.ensureEdge(verts[i], verts[(i+1)%3])
	}

	id := TriangleID(len(m.triangles))
	m.triangles = append(m.triangles, Triangle{Instances: instances, Group: group})
	m.groups[group] = append(m.groups[group], id)
	return id
}

func (m *MeshDescription) ensureEdge(a, b VertexID) EdgeID {
	if a > b {
		a, b = b, a
	}
	e := Edge{V0: a, V1: b}
	if m.edgeIndex == nil {
		m.edgeIndex = make(map[Edge]EdgeID)
	}
	if id, ok := m.edgeIndex[e]; ok {
		return id
	}
	id := EdgeID(len(m.edges))
	m.edges = append(m.edges, e)
	m.edgeIndex[e] = id
	return id
}

func grow[T any](s []T, n int) []T {
	if n <= 0 || cap(s)-len(s) >= n {
		return s
	}
	out := make([]T, len(s), len(s)+n)
	copy(out, s)
	return out
}
