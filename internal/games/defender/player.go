package defender

import (
	"maps"

	"github.com/vovakirdan/galactic-defender/internal/config"
	"github.com/vovakirdan/galactic-defender/internal/core"
	"github.com/vovakirdan/galactic-defender/internal/progress"
)

// Weapon selects the firing mode.
type Weapon int

const (
	WeaponSingle Weapon = iota
	WeaponSpread
	WeaponLaser
	weaponCount
)

// String returns the HUD name of the weapon.
func (w Weapon) String() string {
	switch w {
	case WeaponSingle:
		return "single"
	case WeaponSpread:
		return "spread"
	case WeaponLaser:
		return "laser"
	default:
		return "unknown"
	}
}

var (
	colorPlayer  = core.RGB(80, 200, 255)
	colorNose    = core.RGB(220, 255, 255)
	colorShield  = core.RGB(120, 200, 255)
	colorHPBack  = core.RGB(40, 40, 60)
	colorHPFront = core.RGB(120, 220, 120)
)

// Player is the ship. HP stays within [0, MaxHP].
type Player struct {
	Pos    core.Vec2
	Radius float64
	HP     float64
	MaxHP  float64
	Speed  float64

	DashCooldown float64
	FireCooldown float64
	Rapid        float64 // Seconds of rapid fire left
	Shield       float64 // Seconds of shield left

	Weapon Weapon
	Bombs  int
	Coins  int
	Score  int

	Upgrades map[progress.Upgrade]int
}

// newPlayer builds a fresh ship with the permanent upgrades applied.
func newPlayer(cfg config.DefenderConfig, meta progress.MetaState) *Player {
	pc := cfg.Player
	p := &Player{
		Pos:      core.V(cfg.World.Width*pc.StartX, cfg.World.Height*pc.StartY),
		Radius:   pc.Radius,
		Bombs:    pc.StartBombs,
		Upgrades: make(map[progress.Upgrade]int, 3),
	}
	for _, u := range progress.Upgrades() {
		p.Upgrades[u] = meta.Level(u)
	}
	p.MaxHP = pc.BaseHP + float64(p.Upgrades[progress.UpgradeHP])*pc.HPPerLevel
	p.HP = p.MaxHP
	p.Speed = pc.BaseSpeed + float64(p.Upgrades[progress.UpgradeSpeed])*pc.SpeedPerLevel
	return p
}

// tickTimers counts every cooldown and buff down, never below zero.
func (p *Player) tickTimers(dt float64) {
	p.DashCooldown = core.Approach(p.DashCooldown, dt)
	p.FireCooldown = core.Approach(p.FireCooldown, dt)
	p.Rapid = core.Approach(p.Rapid, dt)
	p.Shield = core.Approach(p.Shield, dt)
}

func (p *Player) switchWeapon(dir int) {
	p.Weapon = Weapon((int(p.Weapon) + dir + int(weaponCount)) % int(weaponCount))
}

// Shielded reports whether incoming damage is ignored.
func (p *Player) Shielded() bool {
	return p.Shield > 0
}

// hurt applies damage unless shielded. Reports whether damage was taken.
func (p *Player) hurt(amount float64) bool {
	if p.Shielded() {
		return false
	}
	p.HP = core.ClampF(p.HP-amount, 0, p.MaxHP)
	return true
}

func (p *Player) heal(amount float64) {
	p.HP = core.ClampF(p.HP+amount, 0, p.MaxHP)
}

// Dead reports whether the run is over.
func (p *Player) Dead() bool {
	return p.HP <= 0
}

// damageLevel returns the damage upgrade level.
func (p *Player) damageLevel() float64 {
	return float64(p.Upgrades[progress.UpgradeDamage])
}

// UpgradeLevels returns a copy of the upgrade levels.
func (p *Player) UpgradeLevels() map[progress.Upgrade]int {
	return maps.Clone(p.Upgrades)
}
