// Package gfx runs the game in a desktop window using ebiten.
package gfx

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/galactic-defender/internal/audio"
	"github.com/vovakirdan/galactic-defender/internal/core"
	"github.com/vovakirdan/galactic-defender/internal/games/defender"
	"github.com/vovakirdan/galactic-defender/internal/progress"
	"github.com/vovakirdan/galactic-defender/internal/storage"
)

// RunRecorder stores finished runs for the scoreboard.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// Options wires the collaborators of the window front end. Every field
// except the runtime config may be left zero.
type Options struct {
	Runtime    core.RuntimeConfig
	Store      progress.Store
	Runs       RunRecorder
	Audio      audio.Player
	Logger     *log.Logger
	Difficulty string
	Input      InputSource
	Now        func() time.Time
}

// Window adapts a defender.Game to ebiten.Game.
type Window struct {
	game    *defender.Game
	painter *Painter
	opts    Options
	log     *log.Logger

	frame     core.InputFrame
	lastFrame time.Time
	gameState core.GameState
	runSaved  bool
	closed    bool
}

// NewWindow creates the window adapter and resets the game.
func NewWindow(game *defender.Game, opts Options) *Window {
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Input == nil {
		opts.Input = &deviceInput{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(opts.Runtime)
	return &Window{
		game:    game,
		painter: NewPainter(),
		opts:    opts,
		log:     logger,
		frame:   core.NewInputFrame(),
	}
}

// Update polls input and steps the simulation with the wall-clock delta.
// It returns ebiten.Termination once the player leaves.
func (w *Window) Update() error {
	if w.closed {
		return ebiten.Termination
	}

	now := w.opts.Now()
	dt := 1 / float64(max(w.opts.Runtime.TickRate, 1))
	if !w.lastFrame.IsZero() {
		dt = now.Sub(w.lastFrame).Seconds()
	}
	w.lastFrame = now

	Poll(w.opts.Input, &w.frame)
	result := w.game.Step(w.frame, dt)
	w.gameState = result.State
	w.opts.Audio.Play(result.Sounds...)

	switch {
	case w.gameState.GameOver && !w.runSaved:
		w.recordRun()
		w.runSaved = true
	case !w.gameState.GameOver:
		w.runSaved = false
	}

	if w.gameState.Quit {
		w.close()
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.painter.Paint(screen, w.game.Render())
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	world := w.game.Config().World
	return int(world.Width), int(world.Height)
}

// GameState returns the state after the last update.
func (w *Window) GameState() core.GameState {
	return w.gameState
}

func (w *Window) recordRun() {
	st := w.gameState
	w.log.Info("run over", "score", st.Score, "wave", st.Wave, "coins", st.Coins, "hiscore", st.HiScore)
	if w.opts.Runs != nil && st.Score > 0 {
		if _, err := w.opts.Runs.SaveRun(storage.RunRecord{
			Score:      st.Score,
			Wave:       st.Wave,
			Coins:      st.Coins,
			Difficulty: w.opts.Difficulty,
		}); err != nil {
			w.log.Warn("could not record run", "err", err)
		}
	}
	progress.SaveBestEffort(w.opts.Store, w.game.Meta(), w.log)
}

// close saves progress once.
func (w *Window) close() {
	if w.closed {
		return
	}
	w.closed = true
	progress.SaveBestEffort(w.opts.Store, w.game.Meta(), w.log)
}

// Run opens the window and blocks until the player quits or the window is
// closed.
func Run(game *defender.Game, opts Options) error {
	w := NewWindow(game, opts)
	world := game.Config().World

	ebiten.SetWindowSize(int(world.Width), int(world.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	err := ebiten.RunGame(w)
	// Closing the window skips Update, so persist here as well.
	w.close()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
