package defender

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/galactic-defender/internal/config"
	"github.com/vovakirdan/galactic-defender/internal/core"
)

// Kind identifies an enemy type.
type Kind int

const (
	KindChaser Kind = iota
	KindZigzag
	KindShooter
	KindBoss
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindChaser:
		return "chaser"
	case KindZigzag:
		return "zigzag"
	case KindShooter:
		return "shooter"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Glyph returns the character used by text renderers.
func (k Kind) Glyph() rune {
	switch k {
	case KindChaser:
		return '◆'
	case KindZigzag:
		return '≈'
	case KindShooter:
		return '¤'
	case KindBoss:
		return '█'
	default:
		return '?'
	}
}

func (k Kind) color() core.Color {
	switch k {
	case KindChaser:
		return core.RGB(255, 120, 120)
	case KindShooter:
		return core.RGB(255, 200, 120)
	default:
		return core.RGB(180, 120, 255)
	}
}

// Enemy is a hostile ship. An enemy whose HP dropped to zero is doomed: it
// takes no further part in combat and is removed with a reward on the next
// update.
type Enemy struct {
	Pos    core.Vec2
	Radius float64
	HP     float64
	MaxHP  float64
	Speed  float64
	Kind   Kind
	Level  int
	Age    float64
	Color  core.Color

	brain brain
	dead  bool // removed from play
}

// Live reports whether the enemy can still fight.
func (e *Enemy) Live() bool {
	return !e.dead && e.HP > 0
}

func (e *Enemy) isDead() bool { return e.dead }

// brain holds the per-kind behaviour and whatever state only that kind needs.
type brain interface {
	// think moves e toward target and returns any bullets it fired.
	think(e *Enemy, target core.Vec2, dt float64, cfg *config.EnemiesConfig) []*Bullet
}

// newEnemy creates an enemy of the given kind and level at pos.
// rng is only consumed by kinds that shoot.
func newEnemy(cfg *config.EnemiesConfig, kind Kind, level int, pos core.Vec2, rng *rand.Rand) *Enemy {
	hp := cfg.BaseHP + float64(level)*cfg.HPPerLevel
	e := &Enemy{
		Pos:    pos,
		Radius: cfg.Radius,
		Speed:  cfg.BaseSpeed + float64(level)*cfg.SpeedPerLevel,
		Kind:   kind,
		Level:  level,
		Color:  kind.color(),
	}
	cool := func() float64 {
		return cfg.CooldownMin + rng.Float64()*(cfg.CooldownMax-cfg.CooldownMin)
	}

	switch kind {
	case KindZigzag:
		e.brain = zigzagBrain{}
	case KindShooter:
		e.brain = &shooterBrain{cool: cool()}
	case KindBoss:
		hp *= cfg.BossHPFactor
		e.Radius = cfg.BossRadius
		e.Speed = cfg.BossSpeed
		e.brain = &bossBrain{cool: cool()}
	default:
		e.brain = chaserBrain{}
	}
	e.HP, e.MaxHP = hp, hp
	return e
}

// update runs the enemy's behaviour and keeps it near the playfield.
func (e *Enemy) update(target core.Vec2, dt float64, cfg *config.EnemiesConfig, w *config.WorldConfig) []*Bullet {
	e.Age += dt
	shots := e.brain.think(e, target, dt, cfg)
	m := w.EnemyMargin
	e.Pos.X = core.ClampF(e.Pos.X, -m, w.Width+m)
	e.Pos.Y = core.ClampF(e.Pos.Y, -m, w.Height+m)
	return shots
}

type chaserBrain struct{}

func (chaserBrain) think(e *Enemy, target core.Vec2, dt float64, _ *config.EnemiesConfig) []*Bullet {
	dir := target.Sub(e.Pos).Normalize()
	e.Pos = e.Pos.Add(dir.Scale(e.Speed * dt))
	return nil
}

type zigzagBrain struct{}

func (zigzagBrain) think(e *Enemy, target core.Vec2, dt float64, cfg *config.EnemiesConfig) []*Bullet {
	dir := target.Sub(e.Pos).Normalize()
	wave := math.Sin(e.Age*cfg.ZigzagFrequency) * cfg.ZigzagAmplitude
	step := dir.Scale(e.Speed * cfg.ZigzagSpeed).Add(dir.Perp().Scale(wave))
	e.Pos = e.Pos.Add(step.Scale(dt))
	return nil
}

type shooterBrain struct {
	cool float64
}

func (b *shooterBrain) think(e *Enemy, target core.Vec2, dt float64, cfg *config.EnemiesConfig) []*Bullet {
	dir := target.Sub(e.Pos).Normalize()
	e.Pos = e.Pos.Add(dir.Scale(e.Speed * cfg.ShooterSpeed * dt))

	b.cool -= dt
	if b.cool > 0 {
		return nil
	}
	b.cool = cfg.ShotCooldown - math.Min(cfg.ShotCooldownMax, float64(e.Level)*cfg.ShotCooldownCut)
	return []*Bullet{{
		Pos:    e.Pos,
		Vel:    dir.Scale(cfg.ShotSpeed),
		Owner:  OwnerEnemy,
		Damage: cfg.ShotDamage,
		Radius: cfg.ShotRadius,
		Color:  colorEnemyShot,
	}}
}

// bossBrain descends to the hover line and sprays rotating bullet rings.
type bossBrain struct {
	cool float64
}

func (b *bossBrain) think(e *Enemy, _ core.Vec2, dt float64, cfg *config.EnemiesConfig) []*Bullet {
	if e.Pos.Y < cfg.BossHoverY {
		e.Pos.Y = math.Min(cfg.BossHoverY, e.Pos.Y+e.Speed*dt)
	}

	b.cool -= dt
	if b.cool > 0 || cfg.RingBullets <= 0 {
		return nil
	}
	b.cool = cfg.RingInterval

	offset := float64(int(e.Age*cfg.RingSpin) % 360)
	step := 360 / float64(cfg.RingBullets)
	shots := make([]*Bullet, 0, cfg.RingBullets)
	for i := range cfg.RingBullets {
		dir := core.FromAngle(float64(i)*step + offset)
		shots = append(shots, &Bullet{
			Pos:    e.Pos,
			Vel:    dir.Scale(cfg.RingSpeed),
			Owner:  OwnerEnemy,
			Damage: cfg.RingDamage,
			Radius: cfg.RingRadius,
			Color:  colorBossShot,
		})
	}
	return shots
}

// cooldown exposes the fire cooldown of shooting kinds for snapshots.
func (e *Enemy) cooldown() float64 {
	switch b := e.brain.(type) {
	case *shooterBrain:
		return b.cool
	case *bossBrain:
		return b.cool
	}
	return 0
}
