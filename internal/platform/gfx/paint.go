package gfx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

// baseTextScale enlarges the 7x13 bitmap face to roughly an 18px UI font.
const baseTextScale = 1.5

// Painter draws a core.DrawList onto an ebiten image.
type Painter struct {
	face font.Face
}

// NewPainter creates a painter using the basic bitmap face.
func NewPainter() *Painter {
	return &Painter{face: basicfont.Face7x13}
}

// Paint clears dst to the list background and draws every shape in order.
// Shape coordinates are world units; the window layout matches the world size.
func (p *Painter) Paint(dst *ebiten.Image, d *core.DrawList) {
	dst.Fill(d.Background)

	for i := range d.Shapes {
		s := &d.Shapes[i]
		if s.Color.A == 0 {
			continue
		}
		switch s.Kind {
		case core.ShapeCircle:
			vector.DrawFilledCircle(dst, f32(s.Pos.X), f32(s.Pos.Y), f32(s.Radius), s.Color, true)
		case core.ShapeRing:
			vector.StrokeCircle(dst, f32(s.Pos.X), f32(s.Pos.Y), f32(s.Radius), strokeWidth(s.Width), s.Color, true)
		case core.ShapeLine:
			vector.StrokeLine(dst, f32(s.Pos.X), f32(s.Pos.Y), f32(s.End.X), f32(s.End.Y), strokeWidth(s.Width), s.Color, true)
		case core.ShapeRect:
			vector.DrawFilledRect(dst, f32(s.Pos.X), f32(s.Pos.Y), f32(s.Size.X), f32(s.Size.Y), s.Color, false)
		case core.ShapeFrame:
			vector.StrokeRect(dst, f32(s.Pos.X), f32(s.Pos.Y), f32(s.Size.X), f32(s.Size.Y), strokeWidth(s.Width), s.Color, false)
		case core.ShapeText:
			p.drawText(dst, s)
		}
	}
}

func (p *Painter) drawText(dst *ebiten.Image, s *core.Shape) {
	scale := textScale(s.Scale)
	x, y := p.textOrigin(s.Text, s.Pos, s.Align, scale)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(s.Color)
	text.DrawWithOptions(dst, s.Text, p.face, op)
}

// textOrigin returns the baseline origin for a label whose top edge sits at
// pos, honouring the alignment.
func (p *Painter) textOrigin(s string, pos core.Vec2, align core.Align, scale float64) (float64, float64) {
	width := float64(font.MeasureString(p.face, s).Ceil()) * scale
	ascent := float64(p.face.Metrics().Ascent.Ceil()) * scale

	x := pos.X
	switch align {
	case core.AlignCenter:
		x -= width / 2
	case core.AlignRight:
		x -= width
	}
	return math.Round(x), math.Round(pos.Y + ascent)
}

func textScale(s float64) float64 {
	if s <= 0 {
		return baseTextScale
	}
	return s * baseTextScale
}

func strokeWidth(w float64) float32 {
	if w <= 0 {
		return 1
	}
	return float32(w)
}

func f32(v float64) float32 {
	return float32(v)
}
