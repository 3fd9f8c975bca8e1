package defender

import (
	"github.com/vovakirdan/galactic-defender/internal/core"
)

// Owner tells whose side a bullet is on.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Bullet colours.
var (
	colorSingleShot = core.RGB(120, 255, 200)
	colorSpreadShot = core.RGB(180, 255, 200)
	colorEnemyShot  = core.RGB(255, 160, 220)
	colorBossShot   = core.RGB(255, 200, 80)
	colorLaser      = core.RGB(120, 255, 200)
)

// Bullet is a moving circle that damages whatever it hits first.
type Bullet struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Owner  Owner
	Damage float64
	Radius float64
	Color  core.Color

	dead bool
}

func (b *Bullet) update(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// inside reports whether the bullet is still within margin of the world.
func (b *Bullet) inside(w, h, margin float64) bool {
	return b.Pos.X > -margin && b.Pos.X < w+margin && b.Pos.Y > -margin && b.Pos.Y < h+margin
}

func (b *Bullet) isDead() bool { return b.dead }

// LaserBeam is an infinite ray from Origin along the unit vector Dir that
// damages every enemy it touches for as long as it lives.
type LaserBeam struct {
	Origin core.Vec2
	Dir    core.Vec2
	DPS    float64
	Life   float64
	Age    float64
}

// Alpha returns the remaining opacity in [0, 1].
func (l *LaserBeam) Alpha() float64 {
	if l.Life <= 0 {
		return 0
	}
	return core.ClampF(1-l.Age/l.Life, 0, 1)
}

func (l *LaserBeam) expired() bool {
	return l.Age >= l.Life
}
