package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	chesserrors "github.com/lgbarn/chess960-go/internal/errors"
	"github.com/lgbarn/chess960-go/internal/testutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	for _, name := range []string{"verbose", "trace", "disabled"} {
		_, err := ParseLevel(name)
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig, "ParseLevel(%q)", name)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	testutil.AssertNoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Int("index", 518).Msg("selected")

	out := buf.String()
	testutil.AssertContains(t, out, "selected")
	testutil.AssertContains(t, out, "index=518")
	if bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Errorf("debug message logged at info level: %q", out)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf, "loud")
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
}
