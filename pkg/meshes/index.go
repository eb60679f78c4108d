package meshes

// Vertex index layouts for the generated shapes. Generators only use these
// to address vertices, so each layout can be checked on its own.

// GridIndex returns the vertex of corner (ix, iy) in a grid with y cells
// along Y. Corners are stored column by column, y+1 per column.
func GridIndex(ix, iy, y int) int {
	return ix*(y+1) + iy
}

// GridCell returns the corners of cell (ix, iy) in AddQuad order:
// (ix,iy), (ix,iy+1), (ix+1,iy+1), (ix+1,iy).
func GridCell(ix, iy, y int) [4]int {
	v0 := GridIndex(ix, iy, y)
	v1 := v0 + 1
	v3 := v0 + y + 1
	v2 := v3 + 1
	return [4]int{v0, v1, v2, v3}
}

// SteinerCorner returns the vertex of corner (ix, iy) in a Steiner grid with
// y cells along Y. Each column holds y+1 corners followed by y cell centers.
func SteinerCorner(ix, iy, y int) int {
	return ix*(2*y+1) + iy
}

// SteinerCenter returns the center vertex of cell (ix, iy).
func SteinerCenter(ix, iy, y int) int {
	return SteinerCorner(ix, iy, y) + y + 1
}

// SteinerFan returns the four triangles of cell (ix, iy), each starting at
// the cell center and walking the corners (ix,iy), (ix,iy+1), (ix+1,iy+1),
// (ix+1,iy).
func SteinerFan(ix, iy, y int) [4][3]int {
	v1 := SteinerCorner(ix, iy, y)
	v0 := v1 + y + 1
	v2 := v1 + 1
	v4 := v0 + y
	v3 := v4 + 1
	return [4][3]int{
		{v0, v1, v2},
		{v0, v2, v3},
		{v0, v3, v4},
		{v0, v4, v1},
	}
}

// SphereLayout describes the vertex rings of a UV sphere.
type SphereLayout struct {
	// Density is the number of vertices per ring.
	Density int
	// Parallels is the number of rings between the poles.
	Parallels int
}

// NewSphereLayout returns the layout for a sphere of the given density.
// The ring size is twice density; the ring count is one less than density.
func NewSphereLayout(density int) SphereLayout {
	density *= 2
	return SphereLayout{
		Density:   density,
		Parallels: (density - 2) / 2,
	}
}

// VertexCount returns the number of ring vertices plus both poles.
func (l SphereLayout) VertexCount() int {
	return 2 + l.Parallels*l.Density
}

// TriangleCount returns the number of triangles: two per quad between
// adjacent rings plus one per pole fan segment.
func (l SphereLayout) TriangleCount() int {
	return 2 * l.Parallels * l.Density
}

// RingIndex returns vertex u of ring.
func (l SphereLayout) RingIndex(ring, u int) int {
	return ring*l.Density + u
}

// Quad returns the corners, in AddQuad order, of the quad joining ring and
// ring+1 at longitude u. The last longitude wraps to the first vertex of
// the same ring.
func (l SphereLayout) Quad(ring, u int) [4]int {
	v0 := l.RingIndex(ring, u)
	v1 := v0 + l.Density
	v3 := v0 + 1
	if u == l.Density-1 {
		v3 = ring * l.Density
	}
	v2 := v3 + l.Density
	return [4]int{v0, v1, v2, v3}
}

// Poles returns the south and north pole vertices, stored after the rings.
func (l SphereLayout) Poles() (south, north int) {
	south = l.Parallels * l.Density
	return south, south + 1
}

// CapTriangles returns the pole fan triangles at longitude u: the south one
// on the first ring and the north one, reversed, on the last ring.
func (l SphereLayout) CapTriangles(u int) (south, north [3]int) {
	sPole, nPole := l.Poles()
	last := l.Parallels - 1

	s0 := l.RingIndex(0, u)
	n0 := l.RingIndex(last, u)
	s1, n1 := s0+1, n0+1
	if u == l.Density-1 {
		s1 = l.RingIndex(0, 0)
		n1 = l.RingIndex(last, 0)
	}

	return [3]int{sPole, s0, s1}, [3]int{nPole, n1, n0}
}
