package defender

import (
	"slices"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

// PowerUpKind identifies a pickup effect.
type PowerUpKind int

const (
	PowerHeal PowerUpKind = iota
	PowerRapid
	PowerShield
	PowerBomb
	PowerCoin
	powerUpKinds
)

// String returns the name of the power-up.
func (k PowerUpKind) String() string {
	switch k {
	case PowerHeal:
		return "heal"
	case PowerRapid:
		return "rapid"
	case PowerShield:
		return "shield"
	case PowerBomb:
		return "bomb"
	case PowerCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Glyph returns the character used by text renderers.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerHeal:
		return '+'
	case PowerRapid:
		return 'R'
	case PowerShield:
		return 'S'
	case PowerBomb:
		return 'B'
	case PowerCoin:
		return '$'
	default:
		return '?'
	}
}

func (k PowerUpKind) color() core.Color {
	switch k {
	case PowerHeal:
		return core.RGB(120, 255, 120)
	case PowerRapid:
		return core.RGB(120, 180, 255)
	case PowerShield:
		return core.RGB(200, 220, 255)
	case PowerBomb:
		return core.RGB(255, 180, 120)
	default:
		return core.RGB(255, 240, 120)
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Pos  core.Vec2
	Kind PowerUpKind
	Age  float64

	dead bool
}

func (p *PowerUp) isDead() bool { return p.dead }

// dropPowerUp spawns a pickup of a uniformly random kind at pos.
func (g *Game) dropPowerUp(pos core.Vec2) {
	kind := PowerUpKind(g.rng.Intn(int(powerUpKinds)))
	g.run.PowerUps = append(g.run.PowerUps, &PowerUp{Pos: pos, Kind: kind})
}

// updatePowerUps moves pickups down, collects the ones touching the player
// and discards the ones that fell off the bottom.
func (g *Game) updatePowerUps(dt float64) {
	r := g.run
	pc := g.cfg.PowerUps
	reach := r.Player.Radius + pc.PickupRange

	for _, p := range r.PowerUps {
		if p.dead {
			continue
		}
		p.Pos.Y += pc.FallSpeed * dt
		p.Age += dt
		switch {
		case core.CirclesOverlap(p.Pos, 0, r.Player.Pos, reach):
			g.collect(p)
		case p.Pos.Y > g.cfg.World.Height+pc.DiscardBelow:
			p.dead = true
		}
	}
	r.PowerUps = slices.DeleteFunc(r.PowerUps, (*PowerUp).isDead)
}

// collect applies a pickup to the player. The pickup is marked dead first,
// so collecting it again does nothing.
func (g *Game) collect(p *PowerUp) {
	if p.dead {
		return
	}
	p.dead = true

	pl := g.run.Player
	pc := g.cfg.PowerUps
	switch p.Kind {
	case PowerHeal:
		pl.heal(pc.Heal)
	case PowerRapid:
		pl.Rapid = pc.BuffDuration
	case PowerShield:
		pl.Shield = pc.BuffDuration
	case PowerBomb:
		if pl.Bombs < pc.MaxBombs {
			pl.Bombs++
		}
	case PowerCoin:
		pl.Coins += pc.Coins
	}
	g.emit(core.SoundPickup)
}
