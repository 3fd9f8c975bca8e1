package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/galactic-defender/internal/progress"
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Show hi-score and permanent upgrades",
	Long: `Print the progress record of the selected backend: the best score
and the level of each permanent upgrade bought in the shop.

Examples:
  defender meta
  defender meta --backend gdata
  defender meta reset`,
	Args: cobra.NoArgs,
	RunE: runMeta,
}

var metaResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget hi-score and upgrades",
	Long:  `Reset the progress record of the selected backend. Run history is kept.`,
	Args:  cobra.NoArgs,
	RunE:  runMetaReset,
}

func init() {
	metaCmd.AddCommand(metaResetCmd)
}

// cliLogger logs warnings to stderr for the non-interactive commands.
func cliLogger() (*log.Logger, error) {
	return newLogger(os.Stderr, flagLogLevel)
}

func runMeta(cmd *cobra.Command, _ []string) error {
	logger, err := cliLogger()
	if err != nil {
		return err
	}
	b, err := openBackend(flagBackend, flagDBPath, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	printMeta(cmd.OutOrStdout(), progress.LoadOrDefault(b.meta, logger))
	return nil
}

// printMeta writes the record in a fixed, readable order.
func printMeta(w io.Writer, m progress.MetaState) {
	fmt.Fprintf(w, "Hi-Score: %d\n", m.HiScore)
	fmt.Fprintln(w, "Upgrades:")
	for _, u := range progress.Upgrades() {
		fmt.Fprintf(w, "  %-7s lvl %d\n", u, m.Level(u))
	}
}

func runMetaReset(cmd *cobra.Command, _ []string) error {
	logger, err := cliLogger()
	if err != nil {
		return err
	}
	b, err := openBackend(flagBackend, flagDBPath, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	if err := resetMeta(b.meta); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
	return nil
}

// resetMeta clears the record, preferring a native reset when the store has one.
func resetMeta(s progress.Store) error {
	if s == nil {
		return errors.New("no progress store available")
	}
	if r, ok := s.(metaResetter); ok {
		return r.ResetMeta()
	}
	return s.SaveMeta(progress.NewMetaState())
}
