package meshdesc

import "github.com/Faultbox/midgard-meshgen/pkg/math"

// VertexPositions returns the per-vertex position storage.
func (m *MeshDescription) VertexPositions() []math.Vec3 {
	return m.positions
}

// TexCoords returns the per-instance texture coordinate storage,
// registering the channel on first use.
func (m *MeshDescription) TexCoords() []math.Vec2 {
	if m.registered&channelTexCoord == 0 {
		m.texCoords = make([]math.Vec2, len(m.instanceVertex), cap(m.instanceVertex))
		m.registered |= channelTexCoord
	}
	return m.texCoords
}

// Normals returns the per-instance normal storage, registering the channel
// on first use.
func (m *MeshDescription) Normals() []math.Vec3 {
	if m.registered&channelNormal == 0 {
		m.normals = make([]math.Vec3, len(m.instanceVertex), cap(m.instanceVertex))
		m.registered |= channelNormal
	}
	return m.normals
}

// Tangents returns the per-instance tangent storage, registering the
// channel on first use.
func (m *MeshDescription) Tangents() []math.Vec3 {
	if m.registered&channelTangent == 0 {
		m.tangents = make([]math.Vec3, len(m.instanceVertex), cap(m.instanceVertex))
		m.registered |= channelTangent
	}
	return m.tangents
}

// Colors returns the per-instance color storage, registering the channel
// on first use.
func (m *MeshDescription) Colors() []math.Vec4 {
	if m.registered&channelColor == 0 {
		m.colors = make([]math.Vec4, len(m.instanceVertex), cap(m.instanceVertex))
		m.registered |= channelColor
	}
	return m.colors
}

// BinormalSigns returns the per-instance binormal sign storage,
// registering the channel on first use.
func (m *MeshDescription) BinormalSigns() []float32 {
	if m.registered&channelBinormalSign == 0 {
		m.binormalSigns = make([]float32, len(m.instanceVertex), cap(m.instanceVertex))
		m.registered |= channelBinormalSign
	}
	return m.binormalSigns
}

// HasTexCoords reports whether the texture coordinate channel is registered.
func (m *MeshDescription) HasTexCoords() bool { return m.registered&channelTexCoord != 0 }

// HasNormals reports whether the normal channel is registered.
func (m *MeshDescription) HasNormals() bool { return m.registered&channelNormal != 0 }

// HasTangents reports whether the tangent channel is registered.
func (m *MeshDescription) HasTangents() bool { return m.registered&channelTangent != 0 }

// HasColors reports whether the color channel is registered.
func (m *MeshDescription) HasColors() bool { return m.registered&channelColor != 0 }

// HasBinormalSigns reports whether the binormal sign channel is registered.
func (m *MeshDescription) HasBinormalSigns() bool { return m.registered&channelBinormalSign != 0 }
