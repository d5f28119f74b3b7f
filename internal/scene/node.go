// Package scene describes the court as a tree of positioned, materially
// described nodes that a renderer can draw, and composes that tree from a
// design.
package scene

import (
	"github.com/Faultbox/courtdesigner/pkg/math"
)

// Kind distinguishes grouping nodes from drawable ones.
type Kind string

const (
	KindGroup Kind = "group"
	KindMesh  Kind = "mesh"
	KindText  Kind = "text"
)

// Role tags what a node represents on the court.
type Role string

const (
	RoleGroup      Role = "group"
	RoleApron      Role = "apron"
	RoleSurface    Role = "surface"
	RoleLine       Role = "line"
	RoleWall       Role = "wall"
	RoleFrameBeam  Role = "frame-beam"
	RoleNet        Role = "net"
	RoleNetLogo    Role = "net-logo"
	RoleNetPost    Role = "net-post"
	RoleDimension  Role = "dimension"
	RoleWallHeight Role = "wall-height"
)

// GeometryType names a primitive shape.
type GeometryType string

const (
	// GeometryPlane lies in the local XY plane facing +Z.
	GeometryPlane GeometryType = "plane"
	// GeometryBox is centered on the origin.
	GeometryBox GeometryType = "box"
	// GeometryCylinder is centered on the origin along local Y.
	GeometryCylinder GeometryType = "cylinder"
)

// Geometry sizes a primitive. Planes use Width and Height, boxes add Depth,
// cylinders use the radii, Height and Segments.
type Geometry struct {
	Type         GeometryType `json:"type"`
	Width        float32      `json:"width,omitempty"`
	Height       float32      `json:"height,omitempty"`
	Depth        float32      `json:"depth,omitempty"`
	RadiusTop    float32      `json:"radiusTop,omitempty"`
	RadiusBottom float32      `json:"radiusBottom,omitempty"`
	Segments     int          `json:"segments,omitempty"`
}

// Extents returns the half sizes of the geometry's local bounding box.
func (g Geometry) Extents() math.Vec3 {
	switch g.Type {
	case GeometryPlane:
		return math.Vec3{X: g.Width / 2, Y: g.Height / 2}
	case GeometryBox:
		return math.Vec3{X: g.Width / 2, Y: g.Height / 2, Z: g.Depth / 2}
	case GeometryCylinder:
		r := max(g.RadiusTop, g.RadiusBottom)
		return math.Vec3{X: r, Y: g.Height / 2, Z: r}
	}
	return math.Vec3{}
}

// Material describes how a mesh is shaded. Color is passed through as given;
// resolving it is the renderer's job.
type Material struct {
	Color       string  `json:"color"`
	Opacity     float32 `json:"opacity"`
	Transparent bool    `json:"transparent,omitempty"`
	DoubleSided bool    `json:"doubleSided,omitempty"`
	Roughness   float32 `json:"roughness"`
	Metalness   float32 `json:"metalness"`
}

// Text is a label drawn in the node's local XY plane.
type Text struct {
	Content      string  `json:"content"`
	FontSize     float32 `json:"fontSize"`
	Color        string  `json:"color"`
	OutlineColor string  `json:"outlineColor,omitempty"`
	OutlineWidth float32 `json:"outlineWidth,omitempty"`
	AnchorX      string  `json:"anchorX"`
	AnchorY      string  `json:"anchorY"`
}

// Node is one element of the scene tree. Position and Rotation (Euler XYZ,
// radians) are relative to the parent.
type Node struct {
	Name          string    `json:"name"`
	Kind          Kind      `json:"kind"`
	Role          Role      `json:"role"`
	Position      math.Vec3 `json:"position,omitzero"`
	Rotation      math.Vec3 `json:"rotation,omitzero"`
	Geometry      *Geometry `json:"geometry,omitempty"`
	Material      *Material `json:"material,omitempty"`
	Text          *Text     `json:"text,omitempty"`
	CastShadow    bool      `json:"castShadow,omitempty"`
	ReceiveShadow bool      `json:"receiveShadow,omitempty"`
	Children      []*Node   `json:"children,omitempty"`
}

// LocalMatrix returns the node's transform relative to its parent.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.TRS(n.Position, n.Rotation, math.Vec3{X: 1, Y: 1, Z: 1})
}

// Walk visits n and its descendants depth-first in child order, passing
// each node's world matrix. Returning false from fn skips the children of
// that node.
func (n *Node) Walk(fn func(node *Node, world math.Mat4) bool) {
	n.walk(math.Identity(), fn)
}

func (n *Node) walk(parent math.Mat4, fn func(*Node, math.Mat4) bool) {
	world := parent.Mul(n.LocalMatrix())
	if !fn(n, world) {
		return
	}
	for _, c := range n.Children {
		c.walk(world, fn)
	}
}

// Find returns every node with the given role in traversal order.
func (n *Node) Find(role Role) []*Node {
	var out []*Node
	n.Walk(func(node *Node, _ math.Mat4) bool {
		if node.Role == role {
			out = append(out, node)
		}
		return true
	})
	return out
}

// Count returns how many nodes carry role.
func (n *Node) Count(role Role) int {
	return len(n.Find(role))
}

// Lookup returns the node with the given name, or nil.
func (n *Node) Lookup(name string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ math.Mat4) bool {
		if found == nil && node.Name == name {
			found = node
		}
		return found == nil
	})
	return found
}

// WorldMatrix returns the world transform of the named node.
func (n *Node) WorldMatrix(name string) (math.Mat4, bool) {
	var (
		m     math.Mat4
		found bool
	)
	n.Walk(func(node *Node, world math.Mat4) bool {
		if !found && node.Name == name {
			m, found = world, true
		}
		return !found
	})
	return m, found
}

// Bounds returns the world-space axis-aligned box enclosing every mesh.
// Text is ignored. ok is false when the tree holds no meshes.
func (n *Node) Bounds() (lo, hi math.Vec3, ok bool) {
	n.Walk(func(node *Node, world math.Mat4) bool {
		if node.Kind != KindMesh || node.Geometry == nil {
			return true
		}
		e := node.Geometry.Extents()
		for i := 0; i < 8; i++ {
			corner := math.Vec3{X: e.X, Y: e.Y, Z: e.Z}
			if i&1 != 0 {
				corner.X = -corner.X
			}
			if i&2 != 0 {
				corner.Y = -corner.Y
			}
			if i&4 != 0 {
				corner.Z = -corner.Z
			}
			p := world.TransformVec3(corner)
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo, hi = lo.Min(p), hi.Max(p)
		}
		return true
	})
	return lo, hi, ok
}
