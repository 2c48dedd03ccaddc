// Package logging builds the zerolog loggers used for diagnostics.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess960-go/internal/errors"
)

// DefaultLevel is the log level used when none is configured.
const DefaultLevel = "warn"

// Levels lists the accepted level names, most verbose first.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel converts a level name to a zerolog level. Matching is
// case-insensitive and an empty name selects DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultLevel
	}
	for _, l := range Levels {
		if l == name {
			return zerolog.ParseLevel(name)
		}
	}
	return zerolog.NoLevel, errors.Wrapf(errors.ErrInvalidConfig, "log level %q (want one of %s)", name, strings.Join(Levels, ", "))
}

// New returns a console logger writing to w at the named level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	console := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(console).Level(lvl), nil
}
