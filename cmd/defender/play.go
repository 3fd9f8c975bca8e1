package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galactic-defender/internal/platform/gfx"
	"github.com/vovakirdan/galactic-defender/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  WASD/Arrows  - Move
  Space/J      - Fire
  Q/E          - Switch weapon
  K/X          - Dash
  B            - Bomb
  Tab          - Shop (between waves)
  P/Esc        - Pause
  Ctrl+S       - Screenshot
  Ctrl+C       - Quit

Terminals report key presses but not releases, so a key counts as held for
a short moment after its last repeat.

Logs go to ~/.defender/defender.log unless --log is given.

Examples:
  defender play
  defender play --difficulty easy
  defender play --config ./my-defender.yaml --seed 7
  defender play --backend memory --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window. Gamepads with a standard layout
are supported: left stick moves, A fires, X dashes, Y bombs, bumpers switch
weapons, Start pauses.

Logs go to stderr unless --log is given.

Examples:
  defender window
  defender window --fps 120 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runPlay(cmd *cobra.Command, _ []string) {
	logPath := flagLogPath
	if logPath == "" {
		logPath = defaultLogPath
	}
	logFile, err := openLogFile(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := newSession(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(s.game, tui.Options{
		Runtime:    s.runtime,
		Width:      width,
		Height:     height,
		Store:      s.backend.meta,
		Runs:       s.backend.recorder(),
		Audio:      s.audio,
		Logger:     logger,
		Difficulty: difficultyName(),
	})

	// Close before a potential exit
	s.Close()

	if runErr != nil {
		logger.Error("terminal front end failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func runWindow(cmd *cobra.Command, _ []string) {
	out := os.Stderr
	if flagLogPath != "" {
		f, err := openLogFile(flagLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := newSession(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := gfx.Run(s.game, gfx.Options{
		Runtime:    s.runtime,
		Store:      s.backend.meta,
		Runs:       s.backend.recorder(),
		Audio:      s.audio,
		Logger:     logger,
		Difficulty: difficultyName(),
	})

	s.Close()

	if runErr != nil {
		logger.Error("window front end failed", "err", runErr)
		os.Exit(1)
	}
}

// difficultyName is the preset recorded with each run.
func difficultyName() string {
	if flagDifficulty == "" {
		return "normal"
	}
	return flagDifficulty
}
