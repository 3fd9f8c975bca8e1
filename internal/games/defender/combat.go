package defender

import (
	"slices"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

// controlPlayer applies movement, dash, weapon switching, bombs and firing.
func (g *Game) controlPlayer(in core.InputFrame, dt float64) {
	p := g.run.Player
	pc := g.cfg.Player
	dir := in.Direction()

	if in.Has(core.ActionDash) && p.DashCooldown <= 0 {
		p.DashCooldown = pc.DashCooldown
		p.Pos = p.Pos.Add(dir.Scale(pc.DashSpeed * pc.DashImpulse))
		g.run.particles.trail(p.Pos)
	}

	p.Pos = p.Pos.Add(dir.Scale(p.Speed * dt))
	m := pc.EdgeMargin
	p.Pos.X = core.ClampF(p.Pos.X, m, g.cfg.World.Width-m)
	p.Pos.Y = core.ClampF(p.Pos.Y, m, g.cfg.World.Height-m)

	if g.pressed(in, core.ActionSwitchLeft) {
		p.switchWeapon(-1)
	}
	if g.pressed(in, core.ActionSwitchRight) {
		p.switchWeapon(1)
	}

	if in.Has(core.ActionBomb) {
		g.tryBomb()
	}
	if in.Has(core.ActionFire) {
		g.fire()
	}
}

// fire shoots the current weapon if it is off cooldown.
func (g *Game) fire() {
	p := g.run.Player
	wc := g.cfg.Weapons
	if p.FireCooldown > 0 {
		return
	}

	factor := 1.0
	if p.Rapid > 0 {
		factor = wc.RapidFactor
	}
	muzzle := p.Pos.Add(core.V(0, -wc.MuzzleOffset))

	switch p.Weapon {
	case WeaponSingle:
		p.FireCooldown = wc.SingleRate * factor
		g.run.Bullets = append(g.run.Bullets, &Bullet{
			Pos:    muzzle,
			Vel:    core.V(0, -wc.BulletSpeed),
			Owner:  OwnerPlayer,
			Damage: wc.SingleDamage + wc.SingleDamageStep*p.damageLevel(),
			Radius: wc.BulletRadius,
			Color:  colorSingleShot,
		})
	case WeaponSpread:
		p.FireCooldown = wc.SpreadRate * factor
		for _, a := range []float64{-wc.SpreadAngle, 0, wc.SpreadAngle} {
			g.run.Bullets = append(g.run.Bullets, &Bullet{
				Pos:    muzzle,
				Vel:    core.FromAngle(a - 90).Scale(wc.BulletSpeed),
				Owner:  OwnerPlayer,
				Damage: wc.SpreadDamage + wc.SpreadDamageStep*p.damageLevel(),
				Radius: wc.BulletRadius,
				Color:  colorSpreadShot,
			})
		}
	case WeaponLaser:
		p.FireCooldown = wc.LaserRate * factor
		g.run.Lasers = append(g.run.Lasers, &LaserBeam{
			Origin: p.Pos.Add(core.V(0, -wc.LaserOffset)),
			Dir:    core.V(0, -1),
			DPS:    wc.LaserDPS + wc.LaserDPSStep*p.damageLevel(),
			Life:   wc.LaserLife,
		})
	}
	g.emit(core.SoundShoot)
}

// tryBomb detonates a bomb if one is available and the last one went off
// long enough ago on the wall clock.
func (g *Game) tryBomb() bool {
	p := g.run.Player
	if p.Bombs <= 0 {
		return false
	}
	now := g.now()
	if !g.lastBomb.IsZero() && now.Sub(g.lastBomb).Seconds() < g.cfg.Combat.BombGap {
		return false
	}
	p.Bombs--
	g.lastBomb = now
	g.detonate()
	g.emit(core.SoundExplosion)
	return true
}

// detonate destroys every live enemy within the bomb radius.
func (g *Game) detonate() {
	r := g.run
	cc := g.cfg.Combat
	killed := 0
	for _, e := range r.Enemies {
		if !e.Live() || core.DistSq(e.Pos, r.Player.Pos) > cc.BombRadius*cc.BombRadius {
			continue
		}
		r.particles.explosion(e.Pos, colorExplosion, g.cfg.Particles.BombAmount)
		e.dead = true
		killed++
	}
	r.Player.Score += killed * cc.BombScore
	r.Player.Coins += killed * cc.BombCoins
	r.compactEnemies()
}

// simulate advances every entity by dt and resolves combat in a fixed order:
// enemies act, doomed enemies pay out, player bullets, enemy bullets,
// lasers, then body contact.
func (g *Game) simulate(dt float64) {
	r := g.run
	r.Player.tickTimers(dt)

	wc := g.cfg.World
	for _, b := range r.Bullets {
		b.update(dt)
		if !b.inside(wc.Width, wc.Height, wc.BulletMargin) {
			b.dead = true
		}
	}
	r.compactBullets()

	r.Lasers = slices.DeleteFunc(r.Lasers, (*LaserBeam).expired)
	for _, l := range r.Lasers {
		l.Age += dt
	}

	g.enemiesAct(dt)
	g.payOutDoomed()
	g.playerBulletsHit()
	g.enemyBulletsHit()
	g.lasersBurn(dt)
	g.bodyContact()

	r.particles.update(dt)
}

// enemiesAct runs every live enemy's behaviour.
func (g *Game) enemiesAct(dt float64) {
	r := g.run
	for _, e := range r.Enemies {
		if !e.Live() {
			continue
		}
		shots := e.update(r.Player.Pos, dt, &g.cfg.Enemies, &g.cfg.World)
		r.Bullets = append(r.Bullets, shots...)
	}
}

// payOutDoomed removes enemies whose HP ran out and rewards the player once
// for each of them.
func (g *Game) payOutDoomed() {
	r := g.run
	cc := g.cfg.Combat
	for _, e := range r.Enemies {
		if e.dead || e.HP > 0 {
			continue
		}
		e.dead = true
		r.particles.explosion(e.Pos, colorKill, g.cfg.Particles.KillAmount)
		r.Player.Score += cc.KillScoreBase + cc.KillScorePerLvl*e.Level
		r.Player.Coins += cc.KillCoinsBase + e.Level/cc.KillCoinsDivisor
		g.emit(core.SoundExplosion)
		if g.rng.Float64() < cc.DropChance {
			g.dropPowerUp(e.Pos)
		}
	}
	r.compactEnemies()
}

// playerBulletsHit lets each player bullet damage the first live enemy it touches.
func (g *Game) playerBulletsHit() {
	r := g.run
	for _, b := range r.Bullets {
		if b.dead || b.Owner != OwnerPlayer {
			continue
		}
		for _, e := range r.Enemies {
			if !e.Live() || !core.CirclesOverlap(b.Pos, b.Radius, e.Pos, e.Radius) {
				continue
			}
			e.HP -= b.Damage
			b.dead = true
			g.emit(core.SoundHit)
			break
		}
	}
	r.compactBullets()
}

// enemyBulletsHit consumes enemy bullets touching the player.
func (g *Game) enemyBulletsHit() {
	r := g.run
	p := r.Player
	for _, b := range r.Bullets {
		if b.dead || b.Owner != OwnerEnemy || !core.CirclesOverlap(b.Pos, b.Radius, p.Pos, p.Radius) {
			continue
		}
		b.dead = true
		if p.hurt(b.Damage) {
			g.emit(core.SoundHit)
		}
	}
	r.compactBullets()
}

// lasersBurn damages every live enemy close enough to a beam.
func (g *Game) lasersBurn(dt float64) {
	r := g.run
	wc := g.cfg.Weapons
	scale := g.cfg.Combat.LaserDamageScale
	for _, l := range r.Lasers {
		for _, e := range r.Enemies {
			if !e.Live() {
				continue
			}
			if core.RayDistance(l.Origin, l.Dir, e.Pos) <= e.Radius+wc.LaserReach {
				e.HP -= l.DPS * dt * scale
			}
		}
	}
}

// bodyContact destroys live enemies touching the player, without reward.
func (g *Game) bodyContact() {
	r := g.run
	p := r.Player
	for _, e := range r.Enemies {
		if !e.Live() || !core.CirclesOverlap(e.Pos, e.Radius, p.Pos, p.Radius) {
			continue
		}
		if p.hurt(g.cfg.Combat.ContactDamage) {
			g.emit(core.SoundHit)
		}
		e.dead = true
		r.particles.explosion(p.Pos, colorContact, g.cfg.Particles.ContactAmount)
	}
	r.compactEnemies()
}
