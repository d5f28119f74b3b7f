package scene

import (
	gomath "math"

	"github.com/Faultbox/courtdesigner/internal/design"
	"github.com/Faultbox/courtdesigner/internal/i18n"
	"github.com/Faultbox/courtdesigner/pkg/math"
)

// Fixed scene dimensions and styling, in meters.
const (
	ApronMargin     = 4.0
	ApronDrop       = -0.01
	LineThickness   = 0.05
	LinesLift       = 0.01
	LineStep        = 0.002
	WallThickness   = 0.1
	BeamSection     = 0.1
	BeamOverhang    = 0.2
	NetCenterHeight = 0.44
	NetHeight       = 0.88
	NetPostRadius   = 0.05
	NetPostHeight   = 1.0
	NetPostSegments = 32
	LabelLift       = 0.1
	LabelOffset     = 1.0
	LabelFontSize   = 0.4
	LogoFontSize    = 0.5
	LogoLift        = 0.01
)

// Styling constants.
const (
	NetLogoText       = "GEMINI"
	GlassColor        = "lightblue"
	GlassRoughness    = 0.1
	GlassMetalness    = 0.2
	LabelColor        = "#FFFFFF"
	LabelOutlineColor = "#000000"
	LabelOutlineWidth = 0.01
)

const halfPi = float32(gomath.Pi / 2)

// flat lays a plane in the horizontal plane facing up.
var flat = math.Vec3{X: -halfPi}

// Compose builds the court scene for d. Label text is formatted for loc.
// The result depends only on its arguments.
func Compose(d design.Design, loc i18n.Locale) *Node {
	const (
		w = design.CourtWidth
		l = design.CourtLength
		h = design.WallHeight
	)

	return group("court", math.Vec3{},
		&Node{
			Name:          "apron",
			Kind:          KindMesh,
			Role:          RoleApron,
			Position:      math.V3(0, ApronDrop, 0),
			Rotation:      flat,
			Geometry:      plane(w+ApronMargin, l+ApronMargin),
			Material:      solid(d.OutOfPlayColor),
			ReceiveShadow: true,
		},
		&Node{
			Name:          "surface",
			Kind:          KindMesh,
			Role:          RoleSurface,
			Rotation:      flat,
			Geometry:      plane(w, l),
			Material:      solid(d.CourtColor),
			ReceiveShadow: true,
		},
		lines(d.LinesColor),
		walls(d.GlassOpacity),
		frame(d.FrameColor),
		net(d.NetColor, d.LogoColor, d.FrameColor),
		labels(loc),
	)
}

// lines marks the court. Each line sits one LineStep above the previous so
// overlapping rectangles never share a depth.
func lines(color string) *Node {
	const (
		w  = design.CourtWidth
		l  = design.CourtLength
		sz = design.ServiceLineZ
		t  = LineThickness
	)
	specs := []struct {
		name  string
		z     float64
		width float64
		depth float64
	}{
		{"boundary", 0, w, l},
		{"center", 0, t, l},
		{"net-line", 0, w, t},
		{"service-back", -sz, w, t},
		{"service-front", sz, w, t},
		{"center-service-back", -sz / 2, t, sz},
		{"center-service-front", sz / 2, t, sz},
	}

	g := group("lines", math.V3(0, LinesLift, 0))
	for i, s := range specs {
		g.Children = append(g.Children, &Node{
			Name:     "lines/" + s.name,
			Kind:     KindMesh,
			Role:     RoleLine,
			Position: math.V3(0, float64(i+1)*LineStep, s.z),
			Rotation: flat,
			Geometry: plane(s.width, s.depth),
			Material: solid(color),
		})
	}
	return g
}

func walls(opacity float64) *Node {
	const (
		w = design.CourtWidth
		l = design.CourtLength
		h = design.WallHeight
	)
	glass := func(name string, pos math.Vec3, rotY float32, width float64) *Node {
		return &Node{
			Name:          "walls/" + name,
			Kind:          KindMesh,
			Role:          RoleWall,
			Position:      pos,
			Rotation:      math.Vec3{Y: rotY},
			Geometry:      box(width, h, WallThickness),
			Material:      glassMaterial(opacity),
			CastShadow:    true,
			ReceiveShadow: true,
		}
	}

	return group("walls", math.Vec3{},
		glass("back", math.V3(0, h/2, -l/2), 0, w),
		glass("front", math.V3(0, h/2, l/2), 0, w),
		glass("left", math.V3(-w/2, h/2, 0), halfPi, l),
		glass("right", math.V3(w/2, h/2, 0), -halfPi, l),
	)
}

func frame(color string) *Node {
	const (
		w = design.CourtWidth
		l = design.CourtLength
		h = design.WallHeight
	)
	beam := func(name string, pos math.Vec3, rotY float32, g *Geometry) *Node {
		return &Node{
			Name:       "frame/" + name,
			Kind:       KindMesh,
			Role:       RoleFrameBeam,
			Position:   pos,
			Rotation:   math.Vec3{Y: rotY},
			Geometry:   g,
			Material:   solid(color),
			CastShadow: true,
		}
	}
	top := func(length float64) *Geometry {
		return box(length+BeamOverhang, BeamSection, BeamSection)
	}
	post := box(BeamSection, h, BeamSection)

	return group("frame", math.Vec3{},
		beam("top-back", math.V3(0, h, -l/2), 0, top(w)),
		beam("top-front", math.V3(0, h, l/2), 0, top(w)),
		beam("top-left", math.V3(-w/2, h, 0), halfPi, top(l)),
		beam("top-right", math.V3(w/2, h, 0), halfPi, top(l)),
		beam("post-left", math.V3(-w/2, h/2, 0), 0, post),
		beam("post-right", math.V3(w/2, h/2, 0), 0, post),
	)
}

func net(netColor, logoColor, postColor string) *Node {
	const w = design.CourtWidth

	mesh := &Node{
		Name:          "net/mesh",
		Kind:          KindMesh,
		Role:          RoleNet,
		Geometry:      plane(w, NetHeight),
		Material:      solid(netColor),
		CastShadow:    true,
		ReceiveShadow: true,
	}
	mesh.Material.DoubleSided = true

	logo := &Node{
		Name:     "net/logo",
		Kind:     KindText,
		Role:     RoleNetLogo,
		Position: math.V3(0, 0, LogoLift),
		Text: &Text{
			Content:  NetLogoText,
			FontSize: LogoFontSize,
			Color:    logoColor,
			AnchorX:  "center",
			AnchorY:  "middle",
		},
	}

	post := func(name string, x float64) *Node {
		return &Node{
			Name:     "net/" + name,
			Kind:     KindMesh,
			Role:     RoleNetPost,
			Position: math.V3(x, 0, 0),
			Geometry: &Geometry{
				Type:         GeometryCylinder,
				RadiusTop:    NetPostRadius,
				RadiusBottom: NetPostRadius,
				Height:       NetPostHeight,
				Segments:     NetPostSegments,
			},
			Material: solid(postColor),
		}
	}

	return group("net", math.V3(0, NetCenterHeight, 0),
		mesh,
		logo,
		post("post-left", -w/2),
		post("post-right", w/2),
	)
}

func labels(loc i18n.Locale) *Node {
	const (
		w = design.CourtWidth
		l = design.CourtLength
		h = design.WallHeight
	)
	length := i18n.T(loc, i18n.KeyDimensionLength, map[string]any{"length": l})
	width := i18n.T(loc, i18n.KeyDimensionWidth, map[string]any{"width": w})
	height := i18n.T(loc, i18n.KeyDimensionWallHeight, map[string]any{"height": h})

	return group("dimensions", math.Vec3{},
		label("length-right", RoleDimension, length, math.V3(w/2+LabelOffset, LabelLift, 0), halfPi),
		label("length-left", RoleDimension, length, math.V3(-w/2-LabelOffset, LabelLift, 0), -halfPi),
		label("width-back", RoleDimension, width, math.V3(0, LabelLift, -l/2-LabelOffset), 0),
		label("width-front", RoleDimension, width, math.V3(0, LabelLift, l/2+LabelOffset), 0),
		label("wall-height", RoleWallHeight, height, math.V3(w/2+3, LabelLift, -l/2-LabelOffset), 0),
	)
}

// label lays text flat on the ground, turned by rotZ within that plane.
func label(name string, role Role, text string, pos math.Vec3, rotZ float32) *Node {
	return &Node{
		Name:     "dimensions/" + name,
		Kind:     KindText,
		Role:     role,
		Position: pos,
		Rotation: math.Vec3{X: -halfPi, Z: rotZ},
		Text: &Text{
			Content:      text,
			FontSize:     LabelFontSize,
			Color:        LabelColor,
			OutlineColor: LabelOutlineColor,
			OutlineWidth: LabelOutlineWidth,
			AnchorX:      "center",
			AnchorY:      "middle",
		},
	}
}

func group(name string, pos math.Vec3, children ...*Node) *Node {
	return &Node{
		Name:     name,
		Kind:     KindGroup,
		Role:     RoleGroup,
		Position: pos,
		Children: children,
	}
}

func plane(width, height float64) *Geometry {
	return &Geometry{Type: GeometryPlane, Width: float32(width), Height: float32(height)}
}

func box(width, height, depth float64) *Geometry {
	return &Geometry{Type: GeometryBox, Width: float32(width), Height: float32(height), Depth: float32(depth)}
}

// solid mirrors three.js MeshStandardMaterial defaults.
func solid(color string) *Material {
	return &Material{Color: color, Opacity: 1, Roughness: 1}
}

func glassMaterial(opacity float64) *Material {
	return &Material{
		Color:       GlassColor,
		Opacity:     float32(opacity),
		Transparent: true,
		DoubleSided: true,
		Roughness:   GlassRoughness,
		Metalness:   GlassMetalness,
	}
}
