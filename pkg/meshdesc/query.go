package meshdesc

import "github.com/Faultbox/midgard-meshgen/pkg/math"

// VertexCount returns the number of vertices.
func (m *MeshDescription) VertexCount() int { return len(m.positions) }

// VertexInstanceCount returns the number of vertex instances.
func (m *MeshDescription) VertexInstanceCount() int { return len(m.instanceVertex) }

// EdgeCount returns the number of distinct edges.
func (m *MeshDescription) EdgeCount() int { return len(m.edges) }

// TriangleCount returns the number of triangles.
func (m *MeshDescription) TriangleCount() int { return len(m.triangles) }

// PolygonGroupCount returns the number of polygon groups.
func (m *MeshDescription) PolygonGroupCount() int { return len(m.groups) }

// InstanceVertex returns the vertex an instance belongs to.
func (m *MeshDescription) InstanceVertex(id VertexInstanceID) VertexID {
	return m.instanceVertex[id]
}

// Edge returns the edge with the given ID.
func (m *MeshDescription) Edge(id EdgeID) Edge {
	return m.edges[id]
}

// Triangle returns the triangle with the given ID.
func (m *MeshDescription) Triangle(id TriangleID) Triangle {
	return m.triangles[id]
}

// TriangleVertices returns the vertices of a triangle in winding order.
func (m *MeshDescription) TriangleVertices(id TriangleID) [3]VertexID {
	t := m.triangles[id]
	return [3]VertexID{
		m.instanceVertex[t.Instances[0]],
		m.instanceVertex[t.Instances[1]],
		m.instanceVertex[t.Instances[2]],
	}
}

// GroupTriangles returns the triangles of a polygon group in creation order.
func (m *MeshDescription) GroupTriangles(group PolygonGroupID) []TriangleID {
	return m.groups[group]
}

// Bounds computes the bounding box of all vertex positions.
// An empty mesh has zero bounds.
func (m *MeshDescription) Bounds() Bounds {
	if len(m.positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.positions[0], Max: m.positions[0]}
	for _, p := range m.positions[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Size returns the extent of the box.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}
