package defender

import "math"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	State      State
	Wave       int
	Phase      Phase
	PhaseTimer float64
	Score      int
	Coins      int
	Bombs      int
	HP         float64
	MaxHP      float64
	Weapon     Weapon
	PlayerX    float64
	PlayerY    float64

	EnemyCount   int
	BulletCount  int
	LaserCount   int
	PowerUpCount int

	// EnemyData holds kind, x, y, hp and fire cooldown for every enemy in order.
	EnemyData []float64
	// BulletData holds x and y for every bullet in order.
	BulletData []float64
	// PowerUpData holds kind and y for every pickup in order.
	PowerUpData []float64
}

// Snapshot returns the current state for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick, State: g.state}
	r := g.run
	if r == nil {
		return snap
	}

	p := r.Player
	snap.Wave = r.Wave
	snap.Phase = r.Phase
	snap.PhaseTimer = r.PhaseTimer
	snap.Score = p.Score
	snap.Coins = p.Coins
	snap.Bombs = p.Bombs
	snap.HP = p.HP
	snap.MaxHP = p.MaxHP
	snap.Weapon = p.Weapon
	snap.PlayerX = p.Pos.X
	snap.PlayerY = p.Pos.Y

	snap.EnemyCount = len(r.Enemies)
	snap.BulletCount = len(r.Bullets)
	snap.LaserCount = len(r.Lasers)
	snap.PowerUpCount = len(r.PowerUps)

	snap.EnemyData = make([]float64, 0, len(r.Enemies)*5)
	for _, e := range r.Enemies {
		snap.EnemyData = append(snap.EnemyData, float64(e.Kind), e.Pos.X, e.Pos.Y, e.HP, e.cooldown())
	}
	snap.BulletData = make([]float64, 0, len(r.Bullets)*2)
	for _, b := range r.Bullets {
		snap.BulletData = append(snap.BulletData, b.Pos.X, b.Pos.Y)
	}
	snap.PowerUpData = make([]float64, 0, len(r.PowerUps)*2)
	for _, pu := range r.PowerUps {
		snap.PowerUpData = append(snap.PowerUpData, float64(pu.Kind), pu.Pos.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bombs)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Weapon) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PhaseTimer)
	h = h*31 + math.Float64bits(snap.HP)
	h = h*31 + math.Float64bits(snap.MaxHP)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.EnemyCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LaserCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.PowerUpData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
