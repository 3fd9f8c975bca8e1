// Package defender implements the Galactic Defender simulation: a wave
// shooter driven by an input snapshot and a frame delta, producing a draw
// list and sound triggers. It has no knowledge of terminals, windows or
// audio devices.
package defender

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/galactic-defender/internal/config"
	"github.com/vovakirdan/galactic-defender/internal/core"
	"github.com/vovakirdan/galactic-defender/internal/progress"
)

// State is the top-level screen of the game.
type State int

const (
	StateMenu State = iota
	StateHelp
	StatePlay
	StatePause
	StateShop
	StateGameOver
	StateQuit
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateHelp:
		return "help"
	case StatePlay:
		return "play"
	case StatePause:
		return "pause"
	case StateShop:
		return "shop"
	case StateGameOver:
		return "gameover"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Main menu entries.
const (
	menuStart = iota
	menuHelp
	menuQuit
	menuCount
)

var menuLabels = [menuCount]string{"Start", "How to Play", "Quit"}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path used by New.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by New.
// Unknown names fall back to normal.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// loadConfig loads the tuning from the configured path and preset.
func loadConfig() config.DefenderConfig {
	cfg, err := config.LoadDefender(configPath)
	if err != nil {
		cfg = config.DefaultDefenderConfig()
	}
	config.ApplyDefenderPreset(&cfg, difficultyPreset)
	return cfg
}

// Option customizes a Game.
type Option func(*Game)

// WithConfig replaces the tuning loaded from disk.
func WithConfig(cfg config.DefenderConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithClock replaces the wall clock used for the bomb cooldown.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// Game is the simulation. Methods must be called from one goroutine.
type Game struct {
	cfg     config.DefenderConfig
	waves   *config.WaveScaler
	meta    *progress.MetaState
	runtime core.RuntimeConfig
	rng     *rand.Rand
	now     func() time.Time

	state   State
	prev    core.InputFrame
	menuSel int
	shopSel int
	run     *Run
	sounds  []core.Sound

	lastBomb time.Time
	tick     uint64
	clock    float64 // Seconds stepped in any state, drives menu animation

	draw *core.DrawList
}

// New creates a game bound to meta. The game reads upgrades from meta when
// a run starts and writes the hi-score and purchases back into it; the
// caller persists it. A nil meta gets a fresh in-memory record.
func New(meta *progress.MetaState, opts ...Option) *Game {
	if meta == nil {
		m := progress.NewMetaState()
		meta = &m
	}
	if meta.Upgrades == nil {
		meta.Upgrades = map[string]int{}
	}
	g := &Game{meta: meta, now: time.Now}
	g.cfg = loadConfig()
	for _, opt := range opts {
		opt(g)
	}
	g.waves = config.NewWaveScaler(g.cfg.Waves)
	g.draw = core.NewDrawList(g.cfg.World.Width, g.cfg.World.Height, colorBackground)
	g.Reset(core.DefaultConfig())
	return g
}

// Reset seeds the game and returns it to the main menu.
// A zero seed picks one from the clock.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.state = StateMenu
	g.prev = core.NewInputFrame()
	g.menuSel = 0
	g.shopSel = 0
	g.run = nil
	g.sounds = g.sounds[:0]
	g.lastBomb = time.Time{}
	g.tick = 0
	g.clock = 0
}

// Start begins a new run from the current meta state.
func (g *Game) Start() {
	g.run = g.newRun()
	g.state = StatePlay
	g.shopSel = 0
	g.lastBomb = time.Time{}
}

func (g *Game) newRun() *Run {
	return &Run{
		Player:     newPlayer(g.cfg, *g.meta),
		Phase:      PhaseInterlude,
		PhaseTimer: g.waves.Interlude(1),
		Difficulty: g.waves.Difficulty(0),
		particles:  newParticleSystem(g.cfg.Particles, g.rng),
	}
}

// Step advances the game by one frame. dt is the wall-clock time since the
// previous frame in seconds and is clamped to the configured maximum.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	dt = core.ClampF(dt, 0, g.cfg.World.MaxDelta)
	g.sounds = g.sounds[:0]
	g.clock += dt

	switch g.state {
	case StateMenu:
		g.stepMenu(in)
	case StateHelp:
		if g.pressed(in, core.ActionConfirm) || g.pressed(in, core.ActionCancel) || g.pressed(in, core.ActionHelp) {
			g.state = StateMenu
		}
	case StatePlay:
		g.stepPlay(in, dt)
	case StatePause:
		switch {
		case g.pressed(in, core.ActionPause):
			g.state = StatePlay
		case g.pressed(in, core.ActionCancel):
			g.state = StateMenu
		}
	case StateShop:
		g.stepShop(in)
	case StateGameOver:
		if g.pressed(in, core.ActionConfirm) {
			g.state = StateMenu
		}
	}

	g.prev = in.Clone()
	g.tick++
	return core.StepResult{State: g.State(), Sounds: slices.Clone(g.sounds)}
}

func (g *Game) stepMenu(in core.InputFrame) {
	switch {
	case g.pressed(in, core.ActionMenuUp):
		g.menuSel = (g.menuSel - 1 + menuCount) % menuCount
	case g.pressed(in, core.ActionMenuDown):
		g.menuSel = (g.menuSel + 1) % menuCount
	case g.pressed(in, core.ActionHelp):
		g.state = StateHelp
	case g.pressed(in, core.ActionCancel):
		g.state = StateQuit
	case g.pressed(in, core.ActionConfirm):
		switch g.menuSel {
		case menuStart:
			g.Start()
		case menuHelp:
			g.state = StateHelp
		case menuQuit:
			g.state = StateQuit
		}
	}
}

func (g *Game) stepPlay(in core.InputFrame, dt float64) {
	switch {
	case g.pressed(in, core.ActionPause):
		g.state = StatePause
		return
	case g.pressed(in, core.ActionShop) && g.run.Phase == PhaseInterlude:
		g.state = StateShop
		g.shopSel = 0
		return
	}

	g.controlPlayer(in, dt)
	g.simulate(dt)
	g.updatePowerUps(dt)
	g.updateWaves(dt)
	g.run.Elapsed += dt

	if g.run.Player.Dead() {
		g.meta.Record(g.run.Player.Score)
		g.state = StateGameOver
	}
}

// pressed reports a rising edge of a against the previous frame.
func (g *Game) pressed(in core.InputFrame, a core.Action) bool {
	return in.Pressed(g.prev, a)
}

// emit queues a sound for this frame. Each sound is reported at most once
// per frame.
func (g *Game) emit(s core.Sound) {
	if !slices.Contains(g.sounds, s) {
		g.sounds = append(g.sounds, s)
	}
}

// State returns the summary the platform needs after each step.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Screen:   g.state.String(),
		HiScore:  g.meta.HiScore,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePause,
		Quit:     g.state == StateQuit,
	}
	if g.run != nil {
		st.Score = g.run.Player.Score
		st.Wave = g.run.Wave
		st.Coins = g.run.Player.Coins
	}
	return st
}

// Screen returns the current state machine state.
func (g *Game) Screen() State {
	return g.state
}

// Run returns the current run, or nil before the first start.
func (g *Game) Run() *Run {
	return g.run
}

// Meta returns a copy of the progress record.
func (g *Game) Meta() progress.MetaState {
	return g.meta.Clone()
}

// Config returns the tuning in use.
func (g *Game) Config() config.DefenderConfig {
	return g.cfg
}

// MenuSelection returns the highlighted main menu entry.
func (g *Game) MenuSelection() int {
	return g.menuSel
}
