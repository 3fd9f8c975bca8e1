package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

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

// Options wires the collaborators of the terminal front end. Every field
// except the runtime config may be left zero.
type Options struct {
	Runtime    core.RuntimeConfig
	Width      int
	Height     int
	Store      progress.Store
	Runs       RunRecorder
	Audio      audio.Player
	Logger     *log.Logger
	Difficulty string
	HoldWindow time.Duration
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game session.
type Model struct {
	game   *defender.Game
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	held   *HeldKeys
	styles styleCache
	opts   Options
	log    *log.Logger

	lastTick  time.Time
	gameState core.GameState
	quitting  bool
	runSaved  bool // Whether the current game over has been recorded
}

// NewModel creates a model for game.
func NewModel(game *defender.Game, opts Options) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	return Model{
		game:   game,
		screen: core.NewScreen(opts.Width, opts.Height-1),
		keys:   DefaultKeyMap(),
		help:   h,
		held:   NewHeldKeys(opts.HoldWindow),
		styles: styleCache{},
		opts:   opts,
		log:    logger,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the actions of a key press. Keys are applied on the
// next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.held.Press(time.Now(), m.keys.Actions(msg)...)
	return m, nil
}

// handleTick steps the simulation with the wall-clock delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(max(m.opts.Runtime.TickRate, 1))
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	result := m.game.Step(m.held.Frame(now), dt)
	m.gameState = result.State
	m.opts.Audio.Play(result.Sounds...)

	// Record the run on game over (once)
	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.recordRun()
		m.runSaved = true
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	if m.gameState.Quit {
		return m.quit()
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// recordRun stores the finished run and the progress record, best effort.
func (m Model) recordRun() {
	st := m.gameState
	m.log.Info("run over", "score", st.Score, "wave", st.Wave, "coins", st.Coins, "hiscore", st.HiScore)
	if m.opts.Runs != nil && st.Score > 0 {
		if _, err := m.opts.Runs.SaveRun(storage.RunRecord{
			Score:      st.Score,
			Wave:       st.Wave,
			Coins:      st.Coins,
			Difficulty: m.opts.Difficulty,
		}); err != nil {
			m.log.Warn("could not record run", "err", err)
		}
	}
	progress.SaveBestEffort(m.opts.Store, m.game.Meta(), m.log)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	progress.SaveBestEffort(m.opts.Store, m.game.Meta(), m.log)
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	Rasterize(m.game.Render(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".defender", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	Rasterize(m.game.Render(), m.screen)
	return renderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game.
func Run(game *defender.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
