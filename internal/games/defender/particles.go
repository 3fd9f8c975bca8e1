package defender

import (
	"math"
	"math/rand"
	"slices"

	"github.com/vovakirdan/galactic-defender/internal/config"
	"github.com/vovakirdan/galactic-defender/internal/core"
)

// Particle colours.
var (
	colorExplosion = core.RGB(255, 160, 60)
	colorKill      = core.RGB(255, 220, 180)
	colorContact   = core.RGB(255, 120, 120)
	colorTrail     = core.RGB(150, 200, 255)
)

// Particle is a short-lived cosmetic dot. It fades out as Age approaches Life.
type Particle struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Color  core.Color
	Radius float64
	Age    float64
	Life   float64
}

// Alpha returns the remaining opacity in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.Life <= 0 {
		return 0
	}
	return core.ClampF(1-p.Age/p.Life, 0, 1)
}

func (p *Particle) expired() bool {
	return p.Age >= p.Life
}

// particleSystem owns every particle of a run.
type particleSystem struct {
	cfg   config.ParticlesConfig
	rng   *rand.Rand
	items []*Particle
}

func newParticleSystem(cfg config.ParticlesConfig, rng *rand.Rand) *particleSystem {
	return &particleSystem{cfg: cfg, rng: rng, items: make([]*Particle, 0, 256)}
}

func (ps *particleSystem) uniform(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

// explosion emits amount particles flying out from pos in random directions.
func (ps *particleSystem) explosion(pos core.Vec2, c core.Color, amount int) {
	speed := ps.cfg.ExplosionSpeed
	for range amount {
		ang := ps.rng.Float64() * 2 * math.Pi
		spd := ps.uniform(0.2*speed, speed)
		ps.items = append(ps.items, &Particle{
			Pos:    pos,
			Vel:    core.V(math.Cos(ang)*spd, math.Sin(ang)*spd),
			Color:  c,
			Radius: float64(2 + ps.rng.Intn(3)),
			Life:   ps.uniform(ps.cfg.LifeMin, ps.cfg.LifeMax),
		})
	}
}

// trail emits one slow particle, used by the dash.
func (ps *particleSystem) trail(pos core.Vec2) {
	s := ps.cfg.TrailSpread
	ps.items = append(ps.items, &Particle{
		Pos:    pos,
		Vel:    core.V(ps.uniform(-s, s), ps.uniform(-s, s)),
		Color:  colorTrail,
		Radius: float64(1 + ps.rng.Intn(3)),
		Life:   ps.uniform(ps.cfg.TrailLifeMin, ps.cfg.TrailLifeMax),
	})
}

// update ages and moves every particle, then drops the expired ones.
// Velocity is damped once per tick.
func (ps *particleSystem) update(dt float64) {
	for _, p := range ps.items {
		p.Age += dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel = p.Vel.Scale(ps.cfg.Damping)
	}
	ps.items = slices.DeleteFunc(ps.items, (*Particle).expired)
}

func (ps *particleSystem) len() int {
	return len(ps.items)
}
