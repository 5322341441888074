// Command inkrt is a minimal, illustrative consumer of the inkrt core: it
// demonstrates the four public entry points a Story façade would build on
// (load, resolve, step, snapshot) without implementing the façade itself.
// It has no glue resolution, no text accumulation, no variable state, and
// no native functions.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Build-time variables, set via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Global flags.
var (
	minVersion uint32
	maxVersion uint32
	logFile    string
	debug      bool
)

var logger *slog.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inkrt",
	Short: "Inspect and step through a compiled ink-style narrative document",
	Long: `inkrt loads a compiled ink JSON document and exposes the core
runtime's load/resolve/step/snapshot operations from the command line.
It is a demonstration consumer, not a full story player: it performs no
text accumulation, variable resolution, or glue collapsing.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Uint32Var(&minVersion, "min-version", 18, "minimum compatible inkVersion")
	rootCmd.PersistentFlags().Uint32Var(&maxVersion, "max-version", 21, "maximum compatible inkVersion")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr (rotated via lumberjack)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level logging")

	rootCmd.AddCommand(dumpCmd, stepCmd, resolveCmd, snapshotCmd, versionCmd)
}

// setupLogging wires slog to a rotating file sink when --log-file is given.
// The core packages themselves never log; diagnostics are carried in error
// values only.
func setupLogging() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if logFile != "" {
		handler = slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inkrt %s\n", Version)
		fmt.Printf("built: %s\n", BuildTime)
		fmt.Printf("commit: %s\n", GitCommit)
	},
}
