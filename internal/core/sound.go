package core

// Sound identifies an audio trigger emitted by the simulation.
// Front ends may play it, ignore it, or have no audio backend at all.
type Sound string

const (
	SoundShoot     Sound = "shoot"
	SoundHit       Sound = "hit"
	SoundExplosion Sound = "explosion"
	SoundPickup    Sound = "pickup"
)

// AllSounds lists every sound id in a stable order.
func AllSounds() []Sound {
	return []Sound{SoundShoot, SoundHit, SoundExplosion, SoundPickup}
}
