package config

import "math"

// WaveScaler turns a wave number into the scheduler's numbers.
type WaveScaler struct {
	cfg WavesConfig
}

// NewWaveScaler creates a scaler for the given wave tuning.
func NewWaveScaler(cfg WavesConfig) *WaveScaler {
	return &WaveScaler{cfg: cfg}
}

// Difficulty returns the difficulty multiplier for a wave: 1 + step*wave.
func (w *WaveScaler) Difficulty(wave int) float64 {
	return 1 + float64(wave)*w.cfg.DifficultyStep
}

// Count returns how many edge enemies open a wave: min(base + perWave*wave, max).
func (w *WaveScaler) Count(wave int) int {
	return min(w.cfg.BaseCount+w.cfg.CountPerWave*wave, w.cfg.MaxCount)
}

// Level returns the level of the enemies that open a wave.
func (w *WaveScaler) Level(wave int) int {
	return 1 + wave/w.cfg.LevelDivisor
}

// HasBoss reports whether the wave spawns a boss.
func (w *WaveScaler) HasBoss(wave int) bool {
	return w.cfg.BossEvery > 0 && wave > 0 && wave%w.cfg.BossEvery == 0
}

// BossLevel returns the boss level for a wave.
func (w *WaveScaler) BossLevel(wave int) int {
	return w.cfg.BossBaseLevel + wave/w.cfg.BossLevelDivisor
}

// SpawnInterval returns the time between trickle spawns during a wave.
func (w *WaveScaler) SpawnInterval(wave int) float64 {
	return math.Max(w.cfg.SpawnMinInterval, w.cfg.SpawnInterval/(1+float64(wave)*w.cfg.SpawnAccel))
}

// ExtraLevel returns the level of trickle spawns.
func (w *WaveScaler) ExtraLevel(wave int) int {
	return 1 + wave/w.cfg.ExtraDivisor
}

// Interlude returns the pause before the given wave starts.
func (w *WaveScaler) Interlude(nextWave int) float64 {
	if nextWave <= 1 {
		return w.cfg.FirstInterlude
	}
	return w.cfg.Interlude
}
