package model

import (
	"testing"

	"github.com/Faultbox/courtdesigner/internal/design"
	"github.com/Faultbox/courtdesigner/internal/i18n"
	"github.com/Faultbox/courtdesigner/internal/scene"
	"github.com/Faultbox/courtdesigner/pkg/math"
)

const epsilon = 1e-5

func approxEqual(a, b float32) bool {
	d := a - b
	return d < epsilon && d > -epsilon
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// checkWinding verifies every triangle's geometric normal agrees with its
// vertex normals.
func checkWinding(t *testing.T, m *Mesh) {
	t.Helper()
	for i := 0; i < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		face := vec(b.Position).Sub(vec(a.Position)).Cross(vec(c.Position).Sub(vec(a.Position)))
		if face.Dot(vec(a.Normal)) <= 0 {
			t.Fatalf("triangle %d winds against its normal %v", i/3, a.Normal)
		}
	}
}

func TestPlane(t *testing.T) {
	m := Plane(10, 20)

	if len(m.Vertices) != 4 || m.TriangleCount() != 2 {
		t.Fatalf("expected 4 vertices and 2 triangles, got %d and %d", len(m.Vertices), m.TriangleCount())
	}
	for _, v := range m.Vertices {
		if v.Normal != [3]float32{0, 0, 1} {
			t.Errorf("expected +Z normal, got %v", v.Normal)
		}
	}
	if m.Bounds.Min != [3]float32{-5, -10, 0} || m.Bounds.Max != [3]float32{5, 10, 0} {
		t.Errorf("unexpected bounds %+v", m.Bounds)
	}
	checkWinding(t, m)
}

func TestBox(t *testing.T) {
	m := Box(2, 4, 6)

	if len(m.Vertices) != 24 || m.TriangleCount() != 12 {
		t.Fatalf("expected 24 vertices and 12 triangles, got %d and %d", len(m.Vertices), m.TriangleCount())
	}
	if m.Bounds.Min != [3]float32{-1, -2, -3} || m.Bounds.Max != [3]float32{1, 2, 3} {
		t.Errorf("unexpected bounds %+v", m.Bounds)
	}

	// Normals point away from the center.
	for _, v := range m.Vertices {
		if vec(v.Position).Dot(vec(v.Normal)) <= 0 {
			t.Errorf("normal %v points inward at %v", v.Normal, v.Position)
		}
	}
	checkWinding(t, m)
}

func TestCylinder(t *testing.T) {
	const segments = 32
	m := Cylinder(0.05, 0.05, 1, segments)

	wantVerts := (segments+1)*2 + 2*(segments+2)
	if len(m.Vertices) != wantVerts {
		t.Errorf("expected %d vertices, got %d", wantVerts, len(m.Vertices))
	}
	if m.TriangleCount() != segments*4 {
		t.Errorf("expected %d triangles, got %d", segments*4, m.TriangleCount())
	}
	if !approxEqual(m.Bounds.Min[1], -0.5) || !approxEqual(m.Bounds.Max[1], 0.5) {
		t.Errorf("unexpected Y bounds %+v", m.Bounds)
	}
	if !approxEqual(m.Bounds.Max[0], 0.05) || !approxEqual(m.Bounds.Max[2], 0.05) {
		t.Errorf("unexpected radius bounds %+v", m.Bounds)
	}
	checkWinding(t, m)
}

func TestCylinderMinimumSegments(t *testing.T) {
	m := Cylinder(1, 1, 1, 1)
	if m.TriangleCount() != 12 {
		t.Errorf("expected 3 segments worth of triangles, got %d", m.TriangleCount())
	}
}

func TestTessellateUnknown(t *testing.T) {
	m := Tessellate(scene.Geometry{Type: "sphere"})
	if len(m.Vertices) != 0 {
		t.Errorf("expected empty mesh, got %d vertices", len(m.Vertices))
	}
}

func TestBuildCourt(t *testing.T) {
	root := scene.Compose(design.Default(), i18n.English)
	b := Build(root)

	// apron + surface + 7 lines + 4 walls + 6 beams + net + 2 posts
	if len(b.Items) != 22 {
		t.Errorf("expected 22 draw items, got %d", len(b.Items))
	}
	// logo + 5 labels
	if b.Skipped != 6 {
		t.Errorf("expected 6 skipped text nodes, got %d", b.Skipped)
	}
	if got := len(b.Transparent()); got != 4 {
		t.Errorf("expected 4 transparent walls, got %d", got)
	}
	for _, it := range b.Transparent() {
		if it.Role != scene.RoleWall {
			t.Errorf("unexpected transparent item %s", it.Name)
		}
		if !approxEqual(it.Color.A, 0.15) {
			t.Errorf("wall alpha: expected 0.15, got %v", it.Color.A)
		}
		if !it.DoubleSided {
			t.Errorf("wall %s should be double sided", it.Name)
		}
	}
	for _, it := range b.Opaque() {
		if it.Color.A != 1 {
			t.Errorf("opaque item %s has alpha %v", it.Name, it.Color.A)
		}
	}
	if len(b.Meshes) >= len(b.Items) {
		t.Errorf("expected shared meshes, got %d meshes for %d items", len(b.Meshes), len(b.Items))
	}
}

func TestBuildUsesWorldTransform(t *testing.T) {
	root := scene.Compose(design.Default(), i18n.English)
	b := Build(root)

	for _, it := range b.Items {
		if it.Name != "net/post-right" {
			continue
		}
		p := it.Model.Translation()
		if !approxEqual(p.X, design.CourtWidth/2) || !approxEqual(p.Y, scene.NetCenterHeight) {
			t.Errorf("unexpected post position %v", p)
		}
		return
	}
	t.Fatal("net/post-right not found")
}

func TestBuildInvalidColorFallsBack(t *testing.T) {
	d := design.Default()
	d.CourtColor = "definitely not a color"
	b := Build(scene.Compose(d, i18n.English))

	for _, it := range b.Items {
		if it.Role == scene.RoleSurface {
			if it.Color.Array() != [4]float32{1, 0, 1, 1} {
				t.Errorf("expected fallback magenta, got %v", it.Color)
			}
			return
		}
	}
	t.Fatal("surface not found")
}

func TestSortBackToFront(t *testing.T) {
	b := Build(scene.Compose(design.Default(), i18n.English))

	// Camera in front of the court: the back wall is farthest.
	b.SortBackToFront(math.Vec3{Y: 8, Z: 20})
	tr := b.Transparent()
	if tr[0].Name != "walls/back" {
		t.Errorf("expected walls/back first, got %s", tr[0].Name)
	}
	if tr[len(tr)-1].Name != "walls/front" {
		t.Errorf("expected walls/front last, got %s", tr[len(tr)-1].Name)
	}
	if len(b.Opaque()) != 18 {
		t.Errorf("sorting must not move opaque items, got %d", len(b.Opaque()))
	}
}
