package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		got, ok := s.Stream(buf)
		for i := range got {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += got
		if !ok || got == 0 {
			return n, peak
		}
	}
}

func TestEverySoundHasATone(t *testing.T) {
	for _, s := range core.AllSounds() {
		if _, ok := Tones[s]; !ok {
			t.Errorf("no tone for %q", s)
		}
	}
}

func TestToneLengthAndAmplitude(t *testing.T) {
	sr := beep.SampleRate(8000)
	for snd, tone := range Tones {
		t.Run(string(snd), func(t *testing.T) {
			n, peak := drain(Streamer(sr, tone, 1))
			if want := sr.N(tone.Duration); n != want {
				t.Errorf("streamed %d samples, expected %d", n, want)
			}
			if peak <= 0 || peak > tone.Volume+1e-9 {
				t.Errorf("peak = %f, expected within (0, %f]", peak, tone.Volume)
			}
		})
	}
}

func TestMutedStreamerIsSilent(t *testing.T) {
	_, peak := drain(Streamer(beep.SampleRate(8000), Tones[core.SoundExplosion], 0))
	if peak != 0 {
		t.Errorf("muted tone peaked at %f", peak)
	}
}

func TestToneFadesOut(t *testing.T) {
	sr := beep.SampleRate(8000)
	tone := Tone{Freq: 440, Duration: 100 * time.Millisecond, Volume: 0.5}
	s := newSine(sr, tone)
	buf := make([][2]float64, sr.N(tone.Duration))
	s.Stream(buf)
	if last := math.Abs(buf[len(buf)-1][0]); last > 0.05 {
		t.Errorf("last sample = %f, expected a faded tail", last)
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Player = Silent{}
	p.Play(core.SoundShoot, core.SoundHit)
	p.Close()
}

func TestSynthWithoutDevice(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized synth panicked: %v", r)
		}
	}()
	s := NewSynth(2)
	if s.volume != 1 {
		t.Errorf("volume should clamp to 1, got %f", s.volume)
	}
	s.Play(core.SoundShoot)
	s.Close()
}

func TestOpenMuted(t *testing.T) {
	p, err := Open(true, 1)
	if err != nil {
		t.Fatalf("Open(muted) = %v", err)
	}
	if _, ok := p.(Silent); !ok {
		t.Errorf("muted Open should return Silent, got %T", p)
	}
}
