package core

import "fmt"

// Color is a straight (non-premultiplied) RGBA colour used by draw-list shapes
// and screen cells. It implements image/color.Color so window renderers can use
// it directly.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements color.Color with premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 255
	g = uint32(c.G) * a / 255
	b = uint32(c.B) * a / 255
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// WithAlpha returns a copy with the alpha channel scaled by f in [0, 1].
func (c Color) WithAlpha(f float64) Color {
	c.A = uint8(ClampF(f, 0, 1) * float64(c.A))
	return c
}

// Blend mixes c over the opaque background bg using c's alpha.
// Character-cell renderers have no alpha, so fades are flattened this way.
func (c Color) Blend(bg Color) Color {
	t := float64(c.A) / 255
	mix := func(fg, bg uint8) uint8 {
		return uint8(float64(fg)*t + float64(bg)*(1-t))
	}
	return Color{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 255}
}

// Hex returns the colour as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsZero reports whether the colour is the zero value (used as "default").
func (c Color) IsZero() bool {
	return c == Color{}
}

// Palette used by the game and the front ends.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(230, 230, 230)
	ColorGray    = RGB(120, 130, 150)
	ColorBlack   = RGB(0, 0, 0)
)
