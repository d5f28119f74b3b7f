// Package design holds the court design parameters, the fixed court
// dimensions and the reducer that merges partial updates.
package design

// Court dimensions in meters. They parameterize scene composition and are
// never part of a design.
const (
	CourtLength  = 20.0
	CourtWidth   = 10.0
	WallHeight   = 4.0
	ServiceLineZ = 6.95
)

// Glass opacity range accepted by the manual slider and the AI path.
const (
	MinGlassOpacity = 0.05
	MaxGlassOpacity = 0.5
)

// Design is the full set of color and opacity inputs for the court.
// Colors are kept as the strings the user or the model supplied.
type Design struct {
	CourtColor     string  `json:"courtColor" yaml:"court_color"`
	LinesColor     string  `json:"linesColor" yaml:"lines_color"`
	OutOfPlayColor string  `json:"outOfPlayColor" yaml:"out_of_play_color"`
	FrameColor     string  `json:"frameColor" yaml:"frame_color"`
	GlassOpacity   float64 `json:"glassOpacity" yaml:"glass_opacity"`
	NetColor       string  `json:"netColor" yaml:"net_color"`
	LogoColor      string  `json:"logoColor" yaml:"logo_color"`
}

// Default returns the design a new session starts with.
func Default() Design {
	return Design{
		CourtColor:     "#005A9C",
		LinesColor:     "#FFFFFF",
		OutOfPlayColor: "#0E76BC",
		FrameColor:     "#1a202c",
		GlassOpacity:   0.15,
		NetColor:       "#111827",
		LogoColor:      "#FFFFFF",
	}
}

// ClampOpacity limits v to [MinGlassOpacity, MaxGlassOpacity].
func ClampOpacity(v float64) float64 {
	return max(MinGlassOpacity, min(MaxGlassOpacity, v))
}

// OpacityPercent returns the opacity as a whole percentage for display.
func (d Design) OpacityPercent() int {
	return int(d.GlassOpacity*100 + 0.5)
}
