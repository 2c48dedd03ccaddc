// chess960 prints a Chess960 (Fischer Random) starting position.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess960-go/internal/chess960"
	"github.com/lgbarn/chess960-go/internal/config"
	"github.com/lgbarn/chess960-go/internal/logging"
	"github.com/lgbarn/chess960-go/internal/output"
	"github.com/lgbarn/chess960-go/internal/selector"
)

const (
	programName    = "chess960"
	programVersion = "0.1.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, selector.CryptoSource{}))
}

// run executes the command and returns its exit status.
func run(args []string, stdout, stderr io.Writer, src selector.Source) int {
	fs, f := newFlagSet(stderr)
	if err := parseFlags(fs, f, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 2
	}

	if f.version {
		fmt.Fprintf(stdout, "%s version %s\n", programName, programVersion)
		return 0
	}

	cfg := config.NewConfigBuilder().WithOutput(stdout).WithLog(stderr).Build()
	if err := setupConfig(cfg, f); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 1
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 1
	}

	if err := printPosition(cfg, src, logger); err != nil {
		logger.Error().Err(err).Msg("cannot print position")
		return 1
	}
	return 0
}

// setupConfig layers file and environment settings, then flags.
func setupConfig(cfg *config.Config, f *cliFlags) error {
	if err := config.Load(cfg, f.configFile); err != nil {
		return err
	}
	applyFlags(f, cfg)
	return cfg.Validate()
}

// printPosition selects an index, decodes it and writes the diagram.
func printPosition(cfg *config.Config, src selector.Source, logger zerolog.Logger) error {
	sel, err := selector.Select(cfg, src)
	if err != nil {
		return err
	}
	logger.Debug().Int("index", sel.Index).Stringer("source", sel.Kind).Msg("selected position")

	a, err := chess960.Decode(sel.Index)
	if err != nil {
		return err
	}

	g, err := chess960.Game(a)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("rank", a.String()).
		Str("fen", g.FEN()).
		Str("shredder", chess960.ShredderFEN(a)).
		Str("board", g.Position().Board().Draw()).
		Msg("decoded position")

	return output.Write(cfg.OutputFile, a, sel.Index)
}
