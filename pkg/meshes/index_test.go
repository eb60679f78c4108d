package meshes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridIndex(t *testing.T) {
	// 3x2 grid: columns of 3 corners.
	assert.Equal(t, 0, GridIndex(0, 0, 2))
	assert.Equal(t, 2, GridIndex(0, 2, 2))
	assert.Equal(t, 3, GridIndex(1, 0, 2))
	assert.Equal(t, 11, GridIndex(3, 2, 2))
}

func TestGridCell(t *testing.T) {
	tests := []struct {
		ix, iy, y int
		want      [4]int
	}{
		{0, 0, 1, [4]int{0, 1, 3, 2}},
		{0, 0, 2, [4]int{0, 1, 4, 3}},
		{1, 1, 2, [4]int{4, 5, 8, 7}},
		{2, 0, 3, [4]int{8, 9, 13, 12}},
	}
	for _, tt := range tests {
		got := GridCell(tt.ix, tt.iy, tt.y)
		assert.Equal(t, tt.want, got, "cell (%d,%d) y=%d", tt.ix, tt.iy, tt.y)

		assert.Equal(t, GridIndex(tt.ix, tt.iy, tt.y), got[0])
		assert.Equal(t, GridIndex(tt.ix, tt.iy+1, tt.y), got[1])
		assert.Equal(t, GridIndex(tt.ix+1, tt.iy+1, tt.y), got[2])
		assert.Equal(t, GridIndex(tt.ix+1, tt.iy, tt.y), got[3])
	}
}

func TestSteinerIndicesCoverEveryVertexOnce(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 3}, {4, 1}, {3, 3}} {
		x, y := dims[0], dims[1]
		total := (x+1)*(y+1) + x*y
		seen := make([]int, total)

		for ix := 0; ix <= x; ix++ {
			for iy := 0; iy <= y; iy++ {
				seen[SteinerCorner(ix, iy, y)]++
				if ix < x && iy < y {
					seen[SteinerCenter(ix, iy, y)]++
				}
			}
		}

		for i, n := range seen {
			assert.Equal(t, 1, n, "%dx%d vertex %d", x, y, i)
		}
	}
}

func TestSteinerFan(t *testing.T) {
	y := 2
	fan := SteinerFan(1, 0, y)

	center := SteinerCenter(1, 0, y)
	c00 := SteinerCorner(1, 0, y)
	c01 := SteinerCorner(1, 1, y)
	c11 := SteinerCorner(2, 1, y)
	c10 := SteinerCorner(2, 0, y)

	assert.Equal(t, [4][3]int{
		{center, c00, c01},
		{center, c01, c11},
		{center, c11, c10},
		{center, c10, c00},
	}, fan)
	assert.Equal(t, [4][3]int{{8, 5, 6}, {8, 6, 11}, {8, 11, 10}, {8, 10, 5}}, fan)
}

func TestSphereLayout(t *testing.T) {
	tests := []struct {
		density   int
		ring      int
		parallels int
		vertices  int
		triangles int
	}{
		{2, 4, 1, 6, 8},
		{4, 8, 3, 26, 48},
		{16, 32, 15, 482, 960},
	}
	for _, tt := range tests {
		l := NewSphereLayout(tt.density)
		assert.Equal(t, tt.ring, l.Density)
		assert.Equal(t, tt.parallels, l.Parallels)
		assert.Equal(t, tt.vertices, l.VertexCount())
		assert.Equal(t, tt.triangles, l.TriangleCount())
	}
}

func TestSphereQuadWrapsSeam(t *testing.T) {
	l := NewSphereLayout(4)

	assert.Equal(t, [4]int{0, 8, 9, 1}, l.Quad(0, 0))
	for ring := 0; ring < l.Parallels-1; ring++ {
		last := l.Quad(ring, l.Density-1)
		first := l.Quad(ring, 0)

		assert.Equal(t, l.RingIndex(ring, 0), last[3], "ring %d seam", ring)
		assert.Equal(t, l.RingIndex(ring+1, 0), last[2], "ring %d seam", ring)
		// The last quad closes onto the first quad's leading edge.
		assert.Equal(t, first[0], last[3])
		assert.Equal(t, first[1], last[2])
	}
}

func TestSphereCaps(t *testing.T) {
	l := NewSphereLayout(4)
	sPole, nPole := l.Poles()
	assert.Equal(t, 24, sPole)
	assert.Equal(t, 25, nPole)

	s, n := l.CapTriangles(0)
	assert.Equal(t, [3]int{24, 0, 1}, s)
	assert.Equal(t, [3]int{25, 17, 16}, n)

	s, n = l.CapTriangles(l.Density - 1)
	assert.Equal(t, [3]int{24, 7, 0}, s)
	assert.Equal(t, [3]int{25, 16, 23}, n)
}
