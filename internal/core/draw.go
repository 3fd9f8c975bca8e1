package core

// ShapeKind selects how a Shape is painted.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota // filled disc at Pos with Radius
	ShapeRing                    // circle outline at Pos with Radius and Width
	ShapeLine                    // segment from Pos to End with Width
	ShapeRect                    // filled rectangle at Pos with Size
	ShapeFrame                   // rectangle outline at Pos with Size and Width
	ShapeText                    // Text anchored at Pos according to Align
)

// Align controls how text is anchored relative to its position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Shape is one primitive in a DrawList. Fields that do not apply to the
// kind are left zero.
type Shape struct {
	Kind   ShapeKind
	Pos    Vec2
	End    Vec2
	Size   Vec2
	Radius float64
	Width  float64
	Color  Color
	Text   string
	Align  Align
	Scale  float64 // text size multiplier, 0 means 1

	// Glyph is a hint for character-cell renderers. Zero lets them pick.
	Glyph rune
}

// DrawList is the render output of one frame: an ordered list of shapes in
// world coordinates. Later shapes paint over earlier ones.
type DrawList struct {
	Width, Height float64
	Background    Color
	Shapes        []Shape
}

// NewDrawList creates an empty list for a world of the given size.
func NewDrawList(w, h float64, bg Color) *DrawList {
	return &DrawList{Width: w, Height: h, Background: bg, Shapes: make([]Shape, 0, 256)}
}

// Reset empties the list, keeping its capacity.
func (d *DrawList) Reset() {
	d.Shapes = d.Shapes[:0]
}

// Len returns the number of shapes.
func (d *DrawList) Len() int {
	return len(d.Shapes)
}

// Add appends a shape.
func (d *DrawList) Add(s Shape) {
	d.Shapes = append(d.Shapes, s)
}

// Circle appends a filled disc.
func (d *DrawList) Circle(p Vec2, r float64, c Color, glyph rune) {
	d.Add(Shape{Kind: ShapeCircle, Pos: p, Radius: r, Color: c, Glyph: glyph})
}

// Ring appends a circle outline.
func (d *DrawList) Ring(p Vec2, r, width float64, c Color) {
	d.Add(Shape{Kind: ShapeRing, Pos: p, Radius: r, Width: width, Color: c})
}

// Line appends a segment.
func (d *DrawList) Line(from, to Vec2, width float64, c Color, glyph rune) {
	d.Add(Shape{Kind: ShapeLine, Pos: from, End: to, Width: width, Color: c, Glyph: glyph})
}

// Rect appends a filled rectangle with top-left corner p.
func (d *DrawList) Rect(p, size Vec2, c Color) {
	d.Add(Shape{Kind: ShapeRect, Pos: p, Size: size, Color: c})
}

// Frame appends a rectangle outline with top-left corner p.
func (d *DrawList) Frame(p, size Vec2, width float64, c Color) {
	d.Add(Shape{Kind: ShapeFrame, Pos: p, Size: size, Width: width, Color: c})
}

// Text appends a text label.
func (d *DrawList) Text(p Vec2, s string, c Color, align Align) {
	d.Add(Shape{Kind: ShapeText, Pos: p, Text: s, Color: c, Align: align})
}

// BigText appends a text label drawn at scale times the normal size.
func (d *DrawList) BigText(p Vec2, s string, c Color, align Align, scale float64) {
	d.Add(Shape{Kind: ShapeText, Pos: p, Text: s, Color: c, Align: align, Scale: scale})
}

// Texts returns the text of every text shape in order. Handy for tests and
// for front ends that only show labels.
func (d *DrawList) Texts() []string {
	var out []string
	for _, s := range d.Shapes {
		if s.Kind == ShapeText {
			out = append(out, s.Text)
		}
	}
	return out
}
