// Package color parses the color strings carried by court designs into
// linear float components a renderer can upload.
package color

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with float components (0.0 to 1.0).
type RGBA struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	White = RGBA{1, 1, 1, 1}
	Black = RGBA{0, 0, 0, 1}

	// Fallback is drawn for strings that do not parse, so a bad value is
	// visible instead of silently black.
	Fallback = RGBA{1, 0, 1, 1}
)

// named holds the CSS color keywords the scene and typical AI answers use.
var named = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"orange":    "#ffa500",
	"purple":    "#800080",
	"pink":      "#ffc0cb",
	"gray":      "#808080",
	"grey":      "#808080",
	"silver":    "#c0c0c0",
	"navy":      "#000080",
	"teal":      "#008080",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"lime":      "#00ff00",
	"maroon":    "#800000",
	"olive":     "#808000",
	"gold":      "#ffd700",
	"lightblue": "#add8e6",
	"skyblue":   "#87ceeb",
	"darkblue":  "#00008b",
	"darkgreen": "#006400",
	"lightgray": "#d3d3d3",
	"darkgray":  "#a9a9a9",
}

// Parse converts "#rgb", "#rrggbb" or a CSS color keyword into RGBA with
// full alpha. Matching is case-insensitive.
func Parse(s string) (RGBA, error) {
	c, err := parse(s)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}, nil
}

// ParseOr returns the parsed color or fallback when s is not a color.
func ParseOr(s string, fallback RGBA) RGBA {
	c, err := Parse(s)
	if err != nil {
		return fallback
	}
	return c
}

// Valid reports whether s parses as a color.
func Valid(s string) bool {
	_, err := parse(s)
	return err == nil
}

// Canonical returns s as a lowercase "#rrggbb" string.
func Canonical(s string) (string, error) {
	c, err := parse(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

func parse(s string) (colorful.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := named[key]; ok {
		key = hex
	}
	if !strings.HasPrefix(key, "#") || (len(key) != 4 && len(key) != 7) {
		return colorful.Color{}, fmt.Errorf("color: %q is not a hex color or known name", s)
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("color: %q: %w", s, err)
	}
	return c, nil
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c RGBA) WithAlpha(a float32) RGBA {
	return RGBA{c.R, c.G, c.B, a}
}

// Array returns the components as [r, g, b, a].
func (c RGBA) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
