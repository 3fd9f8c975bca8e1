package defender

import (
	"testing"
	"time"

	"github.com/vovakirdan/galactic-defender/internal/config"
	"github.com/vovakirdan/galactic-defender/internal/core"
	"github.com/vovakirdan/galactic-defender/internal/progress"
)

const frame = 1.0 / 60

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestGame returns a seeded game in the play state with the built-in
// tuning. tune may adjust the tuning first.
func newTestGame(t *testing.T, tune func(*config.DefenderConfig)) (*Game, *fakeClock) {
	t.Helper()
	cfg := config.DefaultDefenderConfig()
	if tune != nil {
		tune(&cfg)
	}
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	meta := progress.NewMetaState()
	g := New(&meta, WithConfig(cfg), WithClock(clock.now))
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 42})
	g.Start()
	return g, clock
}

// quiet keeps the wave scheduler in a long interlude and disables random
// drops so a test controls every entity.
func quiet(cfg *config.DefenderConfig) {
	cfg.Waves.FirstInterlude = 1000
	cfg.Combat.DropChance = 0
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(input(actions...), frame)
}

// place adds an enemy of kind at pos and returns it.
func place(g *Game, kind Kind, pos core.Vec2) *Enemy {
	e := newEnemy(&g.cfg.Enemies, kind, 1, pos, g.rng)
	g.run.Enemies = append(g.run.Enemies, e)
	return e
}

func hasSound(res core.StepResult, s core.Sound) bool {
	for _, got := range res.Sounds {
		if got == s {
			return true
		}
	}
	return false
}
