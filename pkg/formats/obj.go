package formats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/midgard-meshgen/pkg/math"
	"github.com/Faultbox/midgard-meshgen/pkg/meshdesc"
)

// WriteOBJ writes desc as a Wavefront OBJ object called name.
//
// Positions become "v" records (with RGB appended when vertex colors are
// registered), texture coordinates "vt" and normals "vn", one per vertex
// instance. Each polygon group is written as a "g" block of faces. Faces
// keep the winding the mesh was built with.
func WriteOBJ(w io.Writer, desc *meshdesc.MeshDescription, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", desc.VertexCount(), desc.TriangleCount())
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	colors := vertexColors(desc)
	for i, p := range desc.VertexPositions() {
		if colors != nil {
			c := colors[i].RGB()
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", p.X, p.Y, p.Z, c.X, c.Y, c.Z)
			continue
		}
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}

	hasUVs := desc.HasTexCoords()
	if hasUVs {
		for _, uv := range desc.TexCoords() {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
	}

	hasNormals := desc.HasNormals()
	if hasNormals {
		for _, n := range desc.Normals() {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
	}

	for g := 0; g < desc.PolygonGroupCount(); g++ {
		tris := desc.GroupTriangles(meshdesc.PolygonGroupID(g))
		if len(tris) == 0 {
			continue
		}
		fmt.Fprintf(bw, "g group_%d\n", g)
		for _, id := range tris {
			bw.WriteString("f")
			for _, inst := range desc.Triangle(id).Instances {
				writeFaceVertex(bw, int(desc.InstanceVertex(inst))+1, int(inst)+1, hasUVs, hasNormals)
			}
			bw.WriteByte('\n')
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing obj %q: %w", name, err)
	}
	return nil
}

// vertexColors maps instance colors back to their vertices, or returns nil
// when the mesh has no color channel. OBJ has one color per position, so the
// last instance of a vertex wins.
func vertexColors(desc *meshdesc.MeshDescription) []math.Vec4 {
	if !desc.HasColors() {
		return nil
	}
	out := make([]math.Vec4, desc.VertexCount())
	for i, c := range desc.Colors() {
		out[desc.InstanceVertex(meshdesc.VertexInstanceID(i))] = c
	}
	return out
}

// writeFaceVertex writes one " v", " v/t", " v//n" or " v/t/n" reference.
func writeFaceVertex(w *bufio.Writer, v, inst int, uv, normal bool) {
	switch {
	case uv && normal:
		fmt.Fprintf(w, " %d/%d/%d", v, inst, inst)
	case uv:
		fmt.Fprintf(w, " %d/%d", v, inst)
	case normal:
		fmt.Fprintf(w, " %d//%d", v, inst)
	default:
		fmt.Fprintf(w, " %d", v)
	}
}
