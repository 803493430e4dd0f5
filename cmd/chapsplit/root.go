package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapsplit/version"
)

var (
	cfgFile  string
	logLevel string

	outputBase  string
	noSequence  bool
	includeAll  bool
	assumeYes   bool
	writeReport bool
)

var rootCmd = &cobra.Command{
	Use:   "chapsplit <input.pdf>",
	Short: "Split a PDF into per-chapter files using its bookmark outline",
	Long: `Chapsplit reads the bookmark (outline) tree embedded in a PDF, detects
first-level chapter bookmarks by name, and writes each chapter out as its
own PDF alongside a CSV summary table.

Pages not claimed by any detected chapter are written out as
"Unidentified Pages" so the output always covers the whole document.

Examples:
  chapsplit book.pdf                  # split next to book.pdf
  chapsplit book.pdf -o ~/splits      # split under a different base dir
  chapsplit book.pdf --no-sequence    # no NN_ filename prefixes
  chapsplit inspect book.pdf          # preview the plan, write nothing`,
	Args:         cobra.ExactArgs(1),
	Version:      version.GitRelease,
	SilenceUsage: true,
	RunE:         runSplit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.chapsplit/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn or error",
	)

	rootCmd.Flags().StringVarP(&outputBase, "output-dir", "o", "",
		"base directory for the output folder (default: the input file's directory)")
	rootCmd.Flags().BoolVar(&noSequence, "no-sequence", false,
		"suppress zero-padded sequence prefixes on output filenames")
	rootCmd.Flags().BoolVar(&includeAll, "include-all", false,
		"treat bookmarks at every nesting level as split boundaries")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false,
		"skip the confirmation prompt")
	rootCmd.Flags().BoolVar(&writeReport, "report", false,
		"also write an HTML chapter summary report")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the slog logger all commands share. Diagnostics go to
// stderr so stdout stays clean for the plan table.
func newLogger() *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "unknown log level %q, using info\n", logLevel)
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
