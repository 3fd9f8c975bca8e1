// Package audio turns the simulation's sound triggers into short synthesized
// tones played through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Tone describes a sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // Peak amplitude in [0, 1]
}

// Tones maps every trigger to its beep.
var Tones = map[core.Sound]Tone{
	core.SoundShoot:     {Freq: 880, Duration: 60 * time.Millisecond, Volume: 0.08},
	core.SoundHit:       {Freq: 300, Duration: 90 * time.Millisecond, Volume: 0.09},
	core.SoundExplosion: {Freq: 120, Duration: 180 * time.Millisecond, Volume: 0.2},
	core.SoundPickup:    {Freq: 1000, Duration: 120 * time.Millisecond, Volume: 0.12},
}

// sine is an endless sine wave with a short linear release at the end of
// its window so tones do not click.
type sine struct {
	sr      beep.SampleRate
	freq    float64
	amp     float64
	pos     int
	release int
	total   int
}

func newSine(sr beep.SampleRate, t Tone) *sine {
	total := sr.N(t.Duration)
	return &sine{
		sr:      sr,
		freq:    t.Freq,
		amp:     t.Volume,
		total:   total,
		release: min(total, sr.N(10*time.Millisecond)),
	}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		env := 1.0
		if left := s.total - s.pos; left < s.release && s.release > 0 {
			env = math.Max(0, float64(left)/float64(s.release))
		}
		v := s.amp * env * math.Sin(2*math.Pi*s.freq*float64(s.pos)/float64(s.sr))
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// Streamer returns a finite streamer for t at the given sample rate,
// scaled by the master volume.
func Streamer(sr beep.SampleRate, t Tone, master float64) beep.Streamer {
	return withVolume(beep.Take(sr.N(t.Duration), newSine(sr, t)), master)
}

// withVolume scales s linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
