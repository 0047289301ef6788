package water

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"

	"github.com/Faultbox/watershade/pkg/math"
)

// Color is a linear RGB triple with unclamped float32 channels.
type Color struct {
	R, G, B float32
}

// Add returns c + other.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns c * s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mix interpolates from c towards other by t.
func (c Color) Mix(other Color, t float32) Color {
	return Color{
		math.Mix(c.R, other.R, t),
		math.Mix(c.G, other.G, t),
		math.Mix(c.B, other.B, t),
	}
}

// Clamp limits every channel to [0, 1].
func (c Color) Clamp() Color {
	return Color{math.Saturate(c.R), math.Saturate(c.G), math.Saturate(c.B)}
}

// Distance returns the Euclidean distance between two colours.
func (c Color) Distance(other Color) float32 {
	return math.Vec3{X: c.R - other.R, Y: c.G - other.G, Z: c.B - other.B}.Length()
}

// NRGBA converts the colour and alpha to 8-bit channels.
func (c Color) NRGBA(alpha float32) color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(math.Saturate(alpha)),
	}
}

func to8(v float32) uint8 {
	return uint8(v*255 + 0.5)
}

// Hex formats the clamped colour as #rrggbb.
func (c Color) Hex() string {
	n := c.NRGBA(1)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// ParseColor parses any CSS colour string (hex, rgb(), hsl(), named).
func ParseColor(s string) (Color, error) {
	parsed, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("parsing colour %q: %w", s, err)
	}
	return Color{float32(parsed.R), float32(parsed.G), float32(parsed.B)}, nil
}

// Palette holds the four colours the compositor blends.
type Palette struct {
	Background Color
	DarkLine   Color
	Glow       Color
	Foam       Color
}

// Default palette colours as CSS strings.
const (
	DefaultBackgroundHex = "#0d5273"
	DefaultDarkLineHex   = "#052a42"
	DefaultGlowHex       = "#73d9e6"
	DefaultFoamHex       = "#ebf7ff"
)

// DefaultPalette returns the reference palette.
func DefaultPalette() Palette {
	return Palette{
		Background: mustParse(DefaultBackgroundHex),
		DarkLine:   mustParse(DefaultDarkLineHex),
		Glow:       mustParse(DefaultGlowHex),
		Foam:       mustParse(DefaultFoamHex),
	}
}

func mustParse(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
