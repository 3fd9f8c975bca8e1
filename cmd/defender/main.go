// defender is a wave-based 2D space shooter for the terminal and the desktop.
//
// Usage:
//
//	defender play            - Play in the terminal
//	defender window          - Play in a desktop window
//	defender scores          - Show the best runs
//	defender board           - Browse run history interactively
//	defender meta            - Show hi-score and permanent upgrades
//	defender meta reset      - Forget hi-score and upgrades
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.defender/defender.db)
//	--backend <name>      - Progress store: sqlite, gdata or memory
//	--config <path>       - Custom tuning YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/galactic-defender/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagBackend    string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
	flagMute       bool
	flagVolume     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defender",
	Short: "Galactic Defender - hold the line against endless waves",
	Long: `Galactic Defender is a top-down arcade shooter. Survive waves of
chasers, zigzaggers, shooters and bosses, collect power-ups and spend
coins on permanent upgrades between waves.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - Show the best runs
  board    - Browse run history interactively
  meta     - Show or reset permanent progress

Examples:
  defender play
  defender play --difficulty hard --seed 42
  defender window --backend gdata
  defender scores --limit 20
  defender meta reset`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the SQLite database")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendSQLite, "Progress store: sqlite, gdata, memory")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (terminal play defaults to ~/.defender/defender.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.8, "Master volume from 0 to 1")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(metaCmd)
}
