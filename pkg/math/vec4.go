package math

// Vec4 is a 4D vector. Vertex colors are stored as linear RGBA.
type Vec4 struct {
	X, Y, Z, W float32
}

// White is opaque white.
var White = Vec4{1, 1, 1, 1}

// RGB returns the first three components as Vec3.
func (v Vec4) RGB() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
