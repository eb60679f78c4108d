package meshes

import (
	"fmt"
	"strings"

	"github.com/Faultbox/midgard-meshgen/internal/logger"
	"github.com/Faultbox/midgard-meshgen/pkg/meshdesc"
)

// Kind names a shape generator.
type Kind string

// Shape kinds.
const (
	KindQuad    Kind = "quad"
	KindGrid    Kind = "grid"
	KindSteiner Kind = "steiner"
	KindCube    Kind = "cube"
	KindSphere  Kind = "sphere"
)

// Kinds returns every shape kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindQuad, KindGrid, KindSteiner, KindCube, KindSphere}
}

// ParseKind parses a shape name, ignoring case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown shape %q", s)
}

// Params holds the inputs of every generator. Each kind reads only the
// fields it needs: grids use X, Y and CellSize, cubes Size, spheres Radius
// and Density.
type Params struct {
	Kind     Kind
	X, Y     int
	CellSize float32
	Size     float32
	Radius   float32
	Density  int
}

// Generate runs the generator selected by p.Kind.
// Numeric parameters are passed through unchecked.
func Generate(p Params) (*meshdesc.MeshDescription, error) {
	switch p.Kind {
	case KindQuad:
		return SimpleQuad(), nil
	case KindGrid:
		return Grid(p.X, p.Y, p.CellSize), nil
	case KindSteiner:
		return SteinerGrid(p.X, p.Y, p.CellSize), nil
	case KindCube:
		return Cube(p.Size), nil
	case KindSphere:
		return Sphere(p.Radius, p.Density), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", p.Kind)
	}
}

func generated(shape string, desc *meshdesc.MeshDescription) *meshdesc.MeshDescription {
	logger.Debug("mesh generated", logger.MeshFields(shape, desc.VertexCount(), desc.TriangleCount())...)
	return desc
}
