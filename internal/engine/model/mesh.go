package model

import (
	gomath "math"

	"github.com/Faultbox/courtdesigner/internal/scene"
	"github.com/Faultbox/courtdesigner/pkg/math"
)

// Tessellate builds the mesh for a geometry descriptor. Planes lie in the
// local XY plane facing +Z; cylinders run along Y. Both are centered on the
// origin. Triangles wind counter-clockwise when seen from outside.
func Tessellate(g scene.Geometry) *Mesh {
	switch g.Type {
	case scene.GeometryPlane:
		return Plane(g.Width, g.Height)
	case scene.GeometryBox:
		return Box(g.Width, g.Height, g.Depth)
	case scene.GeometryCylinder:
		return Cylinder(g.RadiusTop, g.RadiusBottom, g.Height, g.Segments)
	}
	return &Mesh{}
}

// Plane builds a width x height quad.
func Plane(width, height float32) *Mesh {
	m := &Mesh{}
	m.addQuad(math.Vec3{}, math.Vec3{X: width / 2}, math.Vec3{Y: height / 2})
	m.computeBounds()
	return m
}

// Box builds a box with one quad per face so each face gets a flat normal.
func Box(width, height, depth float32) *Mesh {
	hw, hh, hd := width/2, height/2, depth/2
	m := &Mesh{}

	// u x v points out of each face.
	m.addQuad(math.Vec3{X: hw}, math.Vec3{Z: -hd}, math.Vec3{Y: hh})
	m.addQuad(math.Vec3{X: -hw}, math.Vec3{Z: hd}, math.Vec3{Y: hh})
	m.addQuad(math.Vec3{Y: hh}, math.Vec3{X: hw}, math.Vec3{Z: -hd})
	m.addQuad(math.Vec3{Y: -hh}, math.Vec3{X: hw}, math.Vec3{Z: hd})
	m.addQuad(math.Vec3{Z: hd}, math.Vec3{X: hw}, math.Vec3{Y: hh})
	m.addQuad(math.Vec3{Z: -hd}, math.Vec3{X: -hw}, math.Vec3{Y: hh})

	m.computeBounds()
	return m
}

// Cylinder builds a capped cylinder (or cone frustum) along Y.
func Cylinder(radiusTop, radiusBottom, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}
	hh := height / 2
	slope := float32(0)
	if height != 0 {
		slope = (radiusBottom - radiusTop) / height
	}

	ring := func(i int) (sin, cos float32) {
		theta := float64(i) / float64(segments) * 2 * gomath.Pi
		return float32(gomath.Sin(theta)), float32(gomath.Cos(theta))
	}

	// Side: bottom and top vertex per column, seam duplicated.
	base := uint32(len(m.Vertices))
	for i := 0; i <= segments; i++ {
		s, c := ring(i)
		n := math.Vec3{X: s, Y: slope, Z: c}.Normalize()
		m.addVertex(math.Vec3{X: radiusBottom * s, Y: -hh, Z: radiusBottom * c}, n)
		m.addVertex(math.Vec3{X: radiusTop * s, Y: hh, Z: radiusTop * c}, n)
	}
	for i := range uint32(segments) {
		a := base + i*2
		b := a + 2
		c := a + 1
		d := a + 3
		m.addTriangle(a, b, c)
		m.addTriangle(c, b, d)
	}

	m.addCap(radiusTop, hh, segments, ring, true)
	m.addCap(radiusBottom, -hh, segments, ring, false)

	m.computeBounds()
	return m
}

func (m *Mesh) addCap(radius, y float32, segments int, ring func(int) (float32, float32), top bool) {
	normal := math.Vec3{Y: -1}
	if top {
		normal = math.Vec3{Y: 1}
	}
	center := m.addVertex(math.Vec3{Y: y}, normal)
	for i := 0; i <= segments; i++ {
		s, c := ring(i)
		m.addVertex(math.Vec3{X: radius * s, Y: y, Z: radius * c}, normal)
	}
	for i := range uint32(segments) {
		p := center + 1 + i
		if top {
			m.addTriangle(center, p, p+1)
		} else {
			m.addTriangle(center, p+1, p)
		}
	}
}

// addQuad adds the quad center±u±v. Its normal is u x v.
func (m *Mesh) addQuad(center, u, v math.Vec3) {
	n := u.Cross(v).Normalize()
	a := m.addVertex(center.Sub(u).Sub(v), n)
	m.addVertex(center.Add(u).Sub(v), n)
	m.addVertex(center.Sub(u).Add(v), n)
	m.addVertex(center.Add(u).Add(v), n)
	m.addTriangle(a, a+1, a+2)
	m.addTriangle(a+2, a+1, a+3)
}
