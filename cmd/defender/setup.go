package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galactic-defender/internal/audio"
	"github.com/vovakirdan/galactic-defender/internal/config"
	"github.com/vovakirdan/galactic-defender/internal/core"
	"github.com/vovakirdan/galactic-defender/internal/games/defender"
	"github.com/vovakirdan/galactic-defender/internal/progress"
	"github.com/vovakirdan/galactic-defender/internal/storage"
)

const (
	backendSQLite = "sqlite"
	backendGData  = "gdata"
	backendMemory = "memory"

	// gdata keeps its files under the per-user data dir for this app.
	appName = "galactic-defender"

	defaultLogPath = "~/.defender/defender.log"
)

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "defender",
		Level:           lvl,
	})
	return logger, nil
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// backend bundles the progress store with the optional run history.
type backend struct {
	meta progress.Store
	runs *storage.Store // nil when the database is unavailable
	name string
}

type runRecorder interface {
	SaveRun(storage.RunRecord) (int64, error)
}

// metaResetter is implemented by stores that can drop their record directly.
type metaResetter interface {
	ResetMeta() error
}

// openBackend opens the progress store selected by name. Run history always
// lives in the SQLite database at dbPath; failing to open it only disables
// the scoreboard.
func openBackend(name, dbPath string, logger *log.Logger) (*backend, error) {
	b := &backend{name: strings.ToLower(name)}

	switch b.name {
	case backendSQLite:
		store, err := storage.Open(dbPath)
		if err != nil {
			logger.Warn("database unavailable, progress will not be saved", "path", dbPath, "err", err)
			return b, nil
		}
		b.meta = store
		b.runs = store
		return b, nil

	case backendGData:
		fs, err := progress.OpenFileStore(appName)
		if err != nil {
			logger.Warn("data directory unavailable, progress will not be saved", "err", err)
		}
		b.meta = fs

	case backendMemory:
		b.meta = progress.NewMemoryStore()

	default:
		return nil, fmt.Errorf("unknown backend %q (use %s, %s or %s)", name, backendSQLite, backendGData, backendMemory)
	}

	if store, err := storage.Open(dbPath); err != nil {
		logger.Warn("run history unavailable", "path", dbPath, "err", err)
	} else {
		b.runs = store
	}
	return b, nil
}

// Close releases the database.
func (b *backend) Close() {
	if b.runs != nil {
		//nolint:errcheck // Best-effort close on shutdown
		b.runs.Close()
	}
}

// session is everything a front end needs to run the game.
type session struct {
	game    *defender.Game
	runtime core.RuntimeConfig
	backend *backend
	audio   audio.Player
	logger  *log.Logger
}

// newSession loads tuning and progress and opens the audio device.
func newSession(logger *log.Logger) (*session, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
	}
	checkConfig(flagConfig, logger)
	defender.SetConfigPath(flagConfig)
	defender.SetDifficultyPreset(string(preset))

	b, err := openBackend(flagBackend, flagDBPath, logger)
	if err != nil {
		return nil, err
	}

	meta := progress.LoadOrDefault(b.meta, logger)
	game := defender.New(&meta)

	player, err := audio.Open(flagMute, flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}

	logger.Info("session started",
		"backend", b.name,
		"difficulty", preset,
		"seed", flagSeed,
		"hiscore", meta.HiScore,
	)

	return &session{
		game:    game,
		runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		backend: b,
		audio:   player,
		logger:  logger,
	}, nil
}

// checkConfig warns when an explicit tuning file cannot be used. The game
// then runs on the built-in defaults.
func checkConfig(path string, logger *log.Logger) bool {
	if path == "" {
		return true
	}
	if _, err := config.LoadDefender(path); err != nil {
		logger.Warn("cannot load config, using defaults", "path", path, "err", err)
		return false
	}
	return true
}

// Close stops audio and closes the database.
func (s *session) Close() {
	s.audio.Close()
	s.backend.Close()
}

// recorder returns the run history as a recorder, nil when there is none.
func (b *backend) recorder() runRecorder {
	if b.runs == nil {
		return nil
	}
	return b.runs
}
