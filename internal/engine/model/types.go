// Package model tessellates scene geometry into meshes ready for GPU upload.
package model

import "github.com/Faultbox/courtdesigner/pkg/math"

// Vertex represents a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh holds indexed triangles in the geometry's local space.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) addVertex(pos, normal math.Vec3) uint32 {
	idx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Position: pos.Array(), Normal: normal.Array()})
	return idx
}

func (m *Mesh) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

func (m *Mesh) computeBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	lo := m.Vertices[0].Position
	hi := lo
	for _, v := range m.Vertices[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	m.Bounds = Bounds{Min: lo, Max: hi}
}
