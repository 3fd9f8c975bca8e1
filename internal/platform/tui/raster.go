package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

// Default glyphs for shapes that carry no hint.
const (
	glyphDisc = '●'
	glyphRing = 'o'
	glyphLine = '·'
)

// Rasterize paints a draw list into the screen, scaling world coordinates
// to cells. Filled rectangles become background colour; every other shape
// becomes glyphs. Colours with alpha are blended over the cell background.
func Rasterize(d *core.DrawList, s *core.Screen) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 || d.Width <= 0 || d.Height <= 0 {
		return
	}
	s.FillBackground(d.Background)

	r := raster{
		s:  s,
		sx: float64(s.Width()) / d.Width,
		sy: float64(s.Height()) / d.Height,
	}
	for i := range d.Shapes {
		r.shape(&d.Shapes[i])
	}
}

type raster struct {
	s      *core.Screen
	sx, sy float64
}

func (r raster) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * r.sx)), int(math.Floor(p.Y * r.sy))
}

// plot draws a glyph, flattening the colour's alpha over the cell background.
func (r raster) plot(x, y int, g rune, c core.Color) {
	cell := r.s.GetCell(x, y)
	if c.A < 255 {
		if c.A == 0 {
			return
		}
		c = c.Blend(cell.Bg)
	}
	r.s.SetColored(x, y, g, c)
}

// tint blends c over the background (and foreground) of one cell.
func (r raster) tint(x, y int, c core.Color) {
	cell := r.s.GetCell(x, y)
	if c.A == 255 {
		r.s.SetBackground(x, y, c)
		return
	}
	r.s.SetBackground(x, y, c.Blend(cell.Bg))
	if !cell.Color.IsZero() {
		r.s.SetColored(x, y, cell.Rune, c.Blend(cell.Color))
	}
}

func (r raster) shape(sh *core.Shape) {
	switch sh.Kind {
	case core.ShapeCircle:
		r.disc(sh.Pos, sh.Radius, glyphOr(sh.Glyph, glyphDisc), sh.Color)
	case core.ShapeRing:
		r.ring(sh.Pos, sh.Radius, glyphOr(sh.Glyph, glyphRing), sh.Color)
	case core.ShapeLine:
		r.line(sh.Pos, sh.End, glyphOr(sh.Glyph, glyphLine), sh.Color)
	case core.ShapeRect:
		r.rect(sh.Pos, sh.Size, sh.Color)
	case core.ShapeFrame:
		x0, y0 := r.cell(sh.Pos)
		x1, y1 := r.cell(sh.Pos.Add(sh.Size))
		r.s.DrawBox(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), sh.Color)
	case core.ShapeText:
		r.text(sh)
	}
}

func glyphOr(g, fallback rune) rune {
	if g == 0 {
		return fallback
	}
	return g
}

// disc fills the cells whose centres fall inside the circle, always at
// least the centre cell.
func (r raster) disc(p core.Vec2, radius float64, g rune, c core.Color) {
	cx, cy := r.cell(p)
	r.plot(cx, cy, g, c)

	rx, ry := radius*r.sx, radius*r.sy
	if rx < 1 && ry < 1 {
		return
	}
	for y := int(math.Floor(p.Y*r.sy - ry)); y <= int(math.Ceil(p.Y*r.sy+ry)); y++ {
		for x := int(math.Floor(p.X*r.sx - rx)); x <= int(math.Ceil(p.X*r.sx+rx)); x++ {
			dx := (float64(x) + 0.5 - p.X*r.sx) / math.Max(rx, 0.5)
			dy := (float64(y) + 0.5 - p.Y*r.sy) / math.Max(ry, 0.5)
			if dx*dx+dy*dy <= 1 {
				r.plot(x, y, g, c)
			}
		}
	}
}

// ring plots points around the circle, one per cell of circumference.
func (r raster) ring(p core.Vec2, radius float64, g rune, c core.Color) {
	steps := max(8, int(2*math.Pi*radius*math.Max(r.sx, r.sy)))
	seen := make(map[[2]int]bool, steps)
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := r.cell(p.Add(core.V(math.Cos(a)*radius, math.Sin(a)*radius)))
		if seen[[2]int{x, y}] {
			continue
		}
		seen[[2]int{x, y}] = true
		r.plot(x, y, g, c)
	}
}

// line draws a segment with Bresenham's algorithm. Cells off screen are
// skipped by the screen itself; the walk is bounded to the screen size so
// very long beams stay cheap.
func (r raster) line(from, to core.Vec2, g rune, c core.Color) {
	x0, y0 := r.cell(from)
	x1, y1 := r.cell(to)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	stepX, stepY := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	limit := 2 * (r.s.Width() + r.s.Height())

	for range limit {
		r.plot(x0, y0, g, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += stepX
		}
		if e2 <= dx {
			e += dx
			y0 += stepY
		}
	}
}

// rect tints every cell it covers. Thin rectangles (bars) still cover one row.
func (r raster) rect(p, size core.Vec2, c core.Color) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	x0, y0 := r.cell(p)
	x1 := int(math.Ceil((p.X + size.X) * r.sx))
	y1 := max(y0+1, int(math.Ceil((p.Y+size.Y)*r.sy)))
	for y := y0; y < y1; y++ {
		for x := x0; x < max(x1, x0+1); x++ {
			r.tint(x, y, c)
		}
	}
}

func (r raster) text(sh *core.Shape) {
	x, y := r.cell(sh.Pos)
	n := utf8.RuneCountInString(sh.Text)
	switch sh.Align {
	case core.AlignCenter:
		x -= n / 2
	case core.AlignRight:
		x -= n
	}
	i := 0
	for _, ch := range sh.Text {
		r.plot(x+i, y, ch, sh.Color)
		i++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
