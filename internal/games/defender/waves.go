package defender

import (
	"slices"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

// Phase is the wave scheduler phase.
type Phase int

const (
	PhaseInterlude Phase = iota // Between waves, shop available
	PhaseActive                 // Wave in progress
)

// String returns the name of the phase.
func (p Phase) String() string {
	if p == PhaseActive {
		return "active"
	}
	return "interlude"
}

// Run is everything that belongs to a single play-through. It is thrown
// away when a new run starts.
type Run struct {
	Player     *Player
	Wave       int
	Phase      Phase
	PhaseTimer float64
	SpawnTimer float64
	Difficulty float64
	Elapsed    float64 // Simulated play time

	Enemies  []*Enemy
	Bullets  []*Bullet
	Lasers   []*LaserBeam
	PowerUps []*PowerUp

	particles *particleSystem
}

// Particles returns the live particles.
func (r *Run) Particles() []*Particle {
	return r.particles.items
}

// LiveEnemies returns the number of enemies still able to fight.
func (r *Run) LiveEnemies() int {
	n := 0
	for _, e := range r.Enemies {
		if e.Live() {
			n++
		}
	}
	return n
}

func (r *Run) compactEnemies() {
	r.Enemies = slices.DeleteFunc(r.Enemies, (*Enemy).isDead)
}

func (r *Run) compactBullets() {
	r.Bullets = slices.DeleteFunc(r.Bullets, (*Bullet).isDead)
}

// updateWaves runs the interlude countdown and spawning.
func (g *Game) updateWaves(dt float64) {
	r := g.run
	switch r.Phase {
	case PhaseInterlude:
		r.PhaseTimer -= dt
		if r.PhaseTimer <= 0 {
			r.Phase = PhaseActive
			g.spawnWave()
		}
	case PhaseActive:
		if len(r.Enemies) == 0 {
			r.Phase = PhaseInterlude
			r.PhaseTimer = g.waves.Interlude(r.Wave + 1)
			return
		}
		r.SpawnTimer -= dt
		if r.SpawnTimer <= 0 {
			r.SpawnTimer = g.waves.SpawnInterval(r.Wave)
			if g.rng.Float64() < g.cfg.Waves.ExtraChance {
				g.spawnEdge(g.pickKind(), g.waves.ExtraLevel(r.Wave))
			}
		}
	}
}

// spawnWave advances to the next wave and spawns its opening enemies.
func (g *Game) spawnWave() {
	r := g.run
	r.Wave++
	r.Difficulty = g.waves.Difficulty(r.Wave)

	n := g.waves.Count(r.Wave)
	lvl := g.waves.Level(r.Wave)
	for range n {
		g.spawnEdge(g.pickKind(), lvl)
	}

	if g.waves.HasBoss(r.Wave) {
		pos := core.V(g.cfg.World.Width/2, g.cfg.Waves.BossSpawnY)
		r.Enemies = append(r.Enemies, newEnemy(&g.cfg.Enemies, KindBoss, g.waves.BossLevel(r.Wave), pos, g.rng))
	}
}

// edgePosition picks a point just outside a random side of the world.
func (g *Game) edgePosition() core.Vec2 {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	inset, off := g.cfg.Waves.EdgeInset, g.cfg.Waves.EdgeOffset
	along := func(extent float64) float64 {
		span := int(extent - 2*inset)
		if span <= 0 {
			return extent / 2
		}
		return inset + float64(g.rng.Intn(span+1))
	}

	switch g.rng.Intn(4) {
	case 0: // top
		return core.V(along(w), -off)
	case 1: // bottom
		return core.V(along(w), h+off)
	case 2: // left
		return core.V(-off, along(h))
	default: // right
		return core.V(w+off, along(h))
	}
}

// pickKind draws an edge enemy kind by the configured weights.
func (g *Game) pickKind() Kind {
	wc := g.cfg.Waves
	roll := g.rng.Float64() * (wc.ChaserWeight + wc.ShooterWeight + wc.ZigzagWeight)
	switch {
	case roll < wc.ChaserWeight:
		return KindChaser
	case roll < wc.ChaserWeight+wc.ShooterWeight:
		return KindShooter
	default:
		return KindZigzag
	}
}

// spawnEdge adds one enemy of kind at a random edge position.
func (g *Game) spawnEdge(kind Kind, level int) {
	pos := g.edgePosition()
	g.run.Enemies = append(g.run.Enemies, newEnemy(&g.cfg.Enemies, kind, level, pos, g.rng))
}
