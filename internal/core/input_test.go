package core

import (
	"math"
	"testing"
)

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // nil map must be usable
	if f.Has(ActionFire) {
		t.Error("empty frame should have no actions")
	}
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set(ActionFire) not visible through Has")
	}

	f.SetAxes(0.5, -0.5)
	f.Clear()
	if f.Has(ActionFire) || f.MoveX != 0 || f.MoveY != 0 {
		t.Error("Clear should drop actions and axes")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDash)
	f.SetAxes(0.3, 0.4)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionDash) || c.MoveX != 0.3 || c.MoveY != 0.4 {
		t.Errorf("clone should be independent of the original, got %+v", c)
	}
}

func TestInputFramePressed(t *testing.T) {
	prev := NewInputFrame()
	cur := NewInputFrame()
	cur.Set(ActionPause)

	if !cur.Pressed(prev, ActionPause) {
		t.Error("pause should be a rising edge")
	}
	if cur.Pressed(cur, ActionPause) {
		t.Error("a held action is not a new press")
	}
	if prev.Pressed(cur, ActionPause) {
		t.Error("a release is not a press")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		x, y    float64
		want    Vec2
	}{
		{"idle", nil, 0, 0, V(0, 0)},
		{"left", []Action{ActionMoveLeft}, 0, 0, V(-1, 0)},
		{"diagonal normalized", []Action{ActionMoveRight, ActionMoveDown}, 0, 0, V(1/math.Sqrt2, 1/math.Sqrt2)},
		{"opposites cancel", []Action{ActionMoveLeft, ActionMoveRight}, 0, 0, V(0, 0)},
		{"stick inside dead zone", nil, 0.05, 0.05, V(0, 0)},
		{"half stick keeps magnitude", nil, 0.5, 0, V(0.5, 0)},
		{"stick plus key clamps to unit", []Action{ActionMoveUp}, 0, -0.8, V(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			f.SetAxes(tc.x, tc.y)
			got := f.Direction()
			if math.Abs(got.X-tc.want.X) > eps || math.Abs(got.Y-tc.want.Y) > eps {
				t.Errorf("Direction() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSetAxesClamps(t *testing.T) {
	var f InputFrame
	f.SetAxes(3, -7)
	if f.MoveX != 1 || f.MoveY != -1 {
		t.Errorf("SetAxes should clamp to [-1, 1], got (%f, %f)", f.MoveX, f.MoveY)
	}
}

func TestActionString(t *testing.T) {
	if ActionBomb.String() != "Bomb" {
		t.Errorf("ActionBomb.String() = %q", ActionBomb.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown actions should print as Unknown")
	}
}

func TestDrawListHelpers(t *testing.T) {
	d := NewDrawList(100, 50, ColorBlack)
	d.Circle(V(1, 2), 3, ColorWhite, '@')
	d.Text(V(0, 0), "score", ColorWhite, AlignLeft)
	d.Line(V(0, 0), V(10, 10), 2, ColorGray, 0)

	if d.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", d.Len())
	}
	if d.Shapes[0].Kind != ShapeCircle || d.Shapes[0].Glyph != '@' {
		t.Errorf("first shape = %+v", d.Shapes[0])
	}
	if texts := d.Texts(); len(texts) != 1 || texts[0] != "score" {
		t.Errorf("Texts() = %v", texts)
	}

	d.Reset()
	if d.Len() != 0 || d.Width != 100 {
		t.Error("Reset should empty shapes and keep dimensions")
	}
}
