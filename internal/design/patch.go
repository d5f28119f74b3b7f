package design

import (
	"fmt"
	"strings"
)

// Field names as they appear in JSON payloads.
const (
	FieldCourtColor     = "courtColor"
	FieldLinesColor     = "linesColor"
	FieldOutOfPlayColor = "outOfPlayColor"
	FieldFrameColor     = "frameColor"
	FieldGlassOpacity   = "glassOpacity"
	FieldNetColor       = "netColor"
	FieldLogoColor      = "logoColor"
)

// ColorFields lists the color-valued fields in display order.
var ColorFields = []string{
	FieldCourtColor,
	FieldLinesColor,
	FieldOutOfPlayColor,
	FieldFrameColor,
	FieldNetColor,
	FieldLogoColor,
}

// Patch is a partial design. A nil field is absent and leaves the current
// value untouched when applied.
type Patch struct {
	CourtColor     *string  `json:"courtColor,omitempty"`
	LinesColor     *string  `json:"linesColor,omitempty"`
	OutOfPlayColor *string  `json:"outOfPlayColor,omitempty"`
	FrameColor     *string  `json:"frameColor,omitempty"`
	GlassOpacity   *float64 `json:"glassOpacity,omitempty"`
	NetColor       *string  `json:"netColor,omitempty"`
	LogoColor      *string  `json:"logoColor,omitempty"`
}

// Apply merges patch over current. Fields present in the patch win; absent
// fields keep their current value. No clamping happens here.
func Apply(current Design, patch Patch) Design {
	next := current
	if patch.CourtColor != nil {
		next.CourtColor = *patch.CourtColor
	}
	if patch.LinesColor != nil {
		next.LinesColor = *patch.LinesColor
	}
	if patch.OutOfPlayColor != nil {
		next.OutOfPlayColor = *patch.OutOfPlayColor
	}
	if patch.FrameColor != nil {
		next.FrameColor = *patch.FrameColor
	}
	if patch.GlassOpacity != nil {
		next.GlassOpacity = *patch.GlassOpacity
	}
	if patch.NetColor != nil {
		next.NetColor = *patch.NetColor
	}
	if patch.LogoColor != nil {
		next.LogoColor = *patch.LogoColor
	}
	return next
}

// Full returns a patch with every field of d present.
func Full(d Design) Patch {
	return Patch{
		CourtColor:     &d.CourtColor,
		LinesColor:     &d.LinesColor,
		OutOfPlayColor: &d.OutOfPlayColor,
		FrameColor:     &d.FrameColor,
		GlassOpacity:   &d.GlassOpacity,
		NetColor:       &d.NetColor,
		LogoColor:      &d.LogoColor,
	}
}

// Set returns a single-field patch, the shape a manual control emits.
// Color fields take the value verbatim; glassOpacity must be a number.
func Set(field string, value any) (Patch, error) {
	var p Patch
	if field == FieldGlassOpacity {
		f, ok := toFloat(value)
		if !ok {
			return p, fmt.Errorf("field %s: expected a number, got %T", field, value)
		}
		p.GlassOpacity = &f
		return p, nil
	}

	s, ok := value.(string)
	if !ok {
		return p, fmt.Errorf("field %s: expected a string, got %T", field, value)
	}
	dst := p.colorField(field)
	if dst == nil {
		return p, fmt.Errorf("unknown design field %q", field)
	}
	*dst = &s
	return p, nil
}

// Color returns the value of a color field and whether it is present.
func (p Patch) Color(field string) (string, bool) {
	dst := p.colorField(field)
	if dst == nil || *dst == nil {
		return "", false
	}
	return **dst, true
}

// Drop removes a field from the patch.
func (p *Patch) Drop(field string) {
	if field == FieldGlassOpacity {
		p.GlassOpacity = nil
		return
	}
	if dst := p.colorField(field); dst != nil {
		*dst = nil
	}
}

// Fields returns the names of the fields present in the patch.
func (p Patch) Fields() []string {
	var out []string
	for _, f := range ColorFields {
		if _, ok := p.Color(f); ok {
			out = append(out, f)
		}
	}
	if p.GlassOpacity != nil {
		out = append(out, FieldGlassOpacity)
	}
	return out
}

// IsEmpty reports whether no field is present.
func (p Patch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// ClampOpacity returns a copy with glassOpacity, when present, clamped into
// the allowed range.
func (p Patch) ClampOpacity() Patch {
	if p.GlassOpacity != nil {
		v := ClampOpacity(*p.GlassOpacity)
		p.GlassOpacity = &v
	}
	return p
}

// String lists the present fields, for logs.
func (p Patch) String() string {
	return "{" + strings.Join(p.Fields(), ",") + "}"
}

func (p *Patch) colorField(field string) **string {
	switch field {
	case FieldCourtColor:
		return &p.CourtColor
	case FieldLinesColor:
		return &p.LinesColor
	case FieldOutOfPlayColor:
		return &p.OutOfPlayColor
	case FieldFrameColor:
		return &p.FrameColor
	case FieldNetColor:
		return &p.NetColor
	case FieldLogoColor:
		return &p.LogoColor
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
