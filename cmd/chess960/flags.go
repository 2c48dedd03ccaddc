// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess960-go/internal/chess960"
	"github.com/lgbarn/chess960-go/internal/config"
	"github.com/lgbarn/chess960-go/internal/logging"
)

// cliFlags holds the parsed command-line flags.
type cliFlags struct {
	configFile string
	standard   bool
	index      int
	logLevel   string
	version    bool

	// set records which flags appeared on the command line.
	set map[string]bool
}

// newFlagSet defines the command-line flags on a fresh flag set.
func newFlagSet(stderr io.Writer) (*flag.FlagSet, *cliFlags) {
	f := &cliFlags{set: make(map[string]bool)}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configFile, "config", "", "Config file (yaml, toml or json)")
	fs.BoolVar(&f.standard, "standard", false, fmt.Sprintf("Use the classical starting position (index %d)", chess960.ClassicalIndex))
	fs.IntVar(&f.index, "index", 0, fmt.Sprintf("Position index to decode, 0-%d (default: random)", chess960.NumPositions-1))
	fs.StringVar(&f.logLevel, "log-level", logging.DefaultLevel, "Log level: "+strings.Join(logging.Levels, ", "))
	fs.BoolVar(&f.version, "version", false, "Show version information")

	fs.Usage = func() { usage(fs) }
	return fs, f
}

// parseFlags parses args and records which flags were given.
func parseFlags(fs *flag.FlagSet, f *cliFlags, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	return nil
}

// applyFlags applies command-line flags to the configuration. Only flags
// given on the command line override file and environment settings.
// -standard and -index pick the same setting: either one replaces whatever
// file or environment chose, and only giving both is a conflict.
func applyFlags(f *cliFlags, cfg *config.Config) {
	switch {
	case f.set["standard"] && f.set["index"]:
		cfg.Standard = f.standard
		cfg.SetIndex(f.index)
	case f.set["standard"]:
		cfg.Standard = f.standard
		if f.standard {
			cfg.ClearIndex()
		}
	case f.set["index"]:
		cfg.Standard = false
		cfg.SetIndex(f.index)
	}
	if f.set["log-level"] {
		cfg.LogLevel = f.logLevel
	}
}

// usage prints command usage to the flag set's output.
func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: %s [options]\n\n", programName)
	fmt.Fprintf(w, "Prints a Chess960 starting position.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  %s_STANDARD, %s_INDEX, %s_LOG_LEVEL\n", config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
}
