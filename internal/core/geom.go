// Package core provides fundamental types and utilities for the defender game.
// It contains no external dependencies (especially no Bubble Tea or ebiten) to
// keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns v rotated 90 degrees counter-clockwise in screen space.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// DistSq returns the squared distance between two points.
func DistSq(a, b Vec2) float64 {
	return a.Sub(b).LenSq()
}

// CirclesOverlap reports whether two circles touch or overlap.
// Compares squared distances, so no square root is taken.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	r := ra + rb
	return DistSq(a, b) <= r*r
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// RayDistance returns the distance from p to the ray starting at origin with
// unit direction dir. Points behind the origin measure to the origin itself.
func RayDistance(origin, dir, p Vec2) float64 {
	d := p.Sub(origin)
	if d.Dot(dir) < 0 {
		return d.Len()
	}
	return math.Abs(d.X*dir.Y - d.Y*dir.X)
}

// FromAngle returns the unit vector for an angle in degrees, measured
// clockwise from +X in screen space (y grows downward).
func FromAngle(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Approach moves val toward zero by step, never crossing it.
// Used for cooldowns and timed buffs.
func Approach(val, step float64) float64 {
	return math.Max(0, val-step)
}
