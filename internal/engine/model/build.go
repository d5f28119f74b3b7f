package model

import (
	"sort"

	"github.com/Faultbox/courtdesigner/internal/scene"
	"github.com/Faultbox/courtdesigner/pkg/color"
	"github.com/Faultbox/courtdesigner/pkg/math"
)

// DrawItem is one mesh instance of a scene, in world space.
type DrawItem struct {
	Name        string
	Role        scene.Role
	Mesh        *Mesh
	Model       math.Mat4
	Color       color.RGBA
	Transparent bool
	DoubleSided bool
	Roughness   float32
	Metalness   float32
}

// Batch is the drawable form of a scene. Opaque items come first, in tree
// order, followed by the transparent ones.
type Batch struct {
	Items []DrawItem
	// Meshes holds each distinct geometry once; items share these pointers.
	Meshes map[scene.Geometry]*Mesh
	// Skipped counts nodes the batch cannot draw, such as text.
	Skipped int
}

// Build flattens a scene tree into draw items. Colors that do not parse
// fall back to color.Fallback so bad input stays visible.
func Build(root *scene.Node) *Batch {
	b := &Batch{Meshes: make(map[scene.Geometry]*Mesh)}
	var transparent []DrawItem

	root.Walk(func(n *scene.Node, world math.Mat4) bool {
		switch n.Kind {
		case scene.KindMesh:
			if n.Geometry == nil || n.Material == nil {
				b.Skipped++
				return true
			}
		case scene.KindText:
			b.Skipped++
			return true
		default:
			return true
		}

		mesh, ok := b.Meshes[*n.Geometry]
		if !ok {
			mesh = Tessellate(*n.Geometry)
			b.Meshes[*n.Geometry] = mesh
		}

		mat := n.Material
		c := color.ParseOr(mat.Color, color.Fallback)
		if mat.Transparent {
			c = c.WithAlpha(mat.Opacity)
		}

		item := DrawItem{
			Name:        n.Name,
			Role:        n.Role,
			Mesh:        mesh,
			Model:       world,
			Color:       c,
			Transparent: mat.Transparent,
			DoubleSided: mat.DoubleSided,
			Roughness:   mat.Roughness,
			Metalness:   mat.Metalness,
		}
		if item.Transparent {
			transparent = append(transparent, item)
		} else {
			b.Items = append(b.Items, item)
		}
		return true
	})

	b.Items = append(b.Items, transparent...)
	return b
}

// Opaque returns the opaque prefix of Items.
func (b *Batch) Opaque() []DrawItem {
	for i, it := range b.Items {
		if it.Transparent {
			return b.Items[:i]
		}
	}
	return b.Items
}

// Transparent returns the transparent suffix of Items.
func (b *Batch) Transparent() []DrawItem {
	return b.Items[len(b.Opaque()):]
}

// SortBackToFront orders the transparent items farthest-first from eye so
// blending composes correctly.
func (b *Batch) SortBackToFront(eye math.Vec3) {
	t := b.Transparent()
	sort.SliceStable(t, func(i, j int) bool {
		di := t[i].Model.Translation().Sub(eye).Length()
		dj := t[j].Model.Translation().Sub(eye).Length()
		return di > dj
	})
}
