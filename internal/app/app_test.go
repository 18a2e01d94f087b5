package app_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvloops/internal/app"
	"github.com/katalvlaran/lvloops/internal/config"
	"github.com/katalvlaran/lvloops/matrix"
	"github.com/katalvlaran/lvloops/permutation"
	"github.com/katalvlaran/lvloops/sequence"
	"github.com/katalvlaran/lvloops/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newApp(t *testing.T, format string) (*app.App, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{
		"LVLOOPS_FORMAT":   format,
		"LVLOOPS_MAX_SIZE": "8",
	})
	require.NoError(t, err)
	var out bytes.Buffer

	return app.New(cfg, nil, &out), &out
}

func TestRun_TextCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"spiral", []string{"spiral", "3"}, "1 2 3\n8 9 4\n7 6 5\n"},
		{"spiral empty", []string{"spiral", "0"}, ""},
		{"rotate", []string{"rotate", "[[1,2,3],[4,5,6],[7,8,9]]"}, "7 4 1\n8 5 2\n9 6 3\n"},
		{"rotate back", []string{"rotate", "-turns", "-1", "[[7,4,1],[8,5,2],[9,6,3]]"}, "1 2 3\n4 5 6\n7 8 9\n"},
		{"sort", []string{"sort", "-2", "9", "5", "-3"}, "-3 -2 5 9\n"},
		{"sort empty", []string{"sort"}, "\n"},
		{"nearest", []string{"nearest", "321321"}, "322113\n"},
		{"balance", []string{"balance", "1", "2", "5", "3", "0"}, "2\n"},
		{"balance fractions", []string{"balance", "0.5", "0.25", "8", "0.75"}, "2\n"},
		{"shuffle", []string{"shuffle", "qwerty", "3"}, "qrwtey\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a, out := newApp(t, config.FormatText)
			require.NoError(t, a.Run(tc.args))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRun_YAML(t *testing.T) {
	a, out := newApp(t, config.FormatYAML)
	require.NoError(t, a.Run([]string{"nearest", "12345"}))
	assert.Equal(t, "command: nearest\ninput: 12345\noutput: 12354\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no command", nil, app.ErrUsage},
		{"unknown", []string{"fly"}, app.ErrUsage},
		{"spiral arity", []string{"spiral"}, app.ErrUsage},
		{"spiral nan", []string{"spiral", "x"}, app.ErrUsage},
		{"spiral negative", []string{"spiral", "-1"}, matrix.ErrNegativeSize},
		{"spiral too large", []string{"spiral", "9"}, app.ErrTooLarge},
		{"rotate bad yaml", []string{"rotate", "{a: b}"}, app.ErrUsage},
		{"rotate bad flag", []string{"rotate", "-spin", "1", "[[1]]"}, app.ErrUsage},
		{"rotate non-square", []string{"rotate", "[[1,2]]"}, matrix.ErrNonSquare},
		{"rotate ragged", []string{"rotate", "[[1,2],[3]]"}, matrix.ErrRaggedRows},
		{"sort nan", []string{"sort", "1", "NaN"}, sorting.ErrNaN},
		{"sort word", []string{"sort", "one"}, app.ErrUsage},
		{"nearest zero", []string{"nearest", "0"}, permutation.ErrNotPositive},
		{"nearest overflow", []string{"nearest", "9223372036854775807"}, permutation.ErrOverflow},
		{"balance word", []string{"balance", "x"}, app.ErrUsage},
		{"shuffle negative", []string{"shuffle", "abc", "-1"}, sequence.ErrNegativeIterations},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a, out := newApp(t, config.FormatText)
			err := a.Run(tc.args)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, out.String(), "nothing written on error")
		})
	}
}

func TestRun_DebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg, err := config.LoadFrom(map[string]string{"LVLOOPS_FORMAT": "text"})
	require.NoError(t, err)
	var out bytes.Buffer

	a := app.New(cfg, zap.New(core), &out)
	require.NoError(t, a.Run([]string{"spiral", "4"}))
	assert.Equal(t, 1, logs.FilterMessage("run").Len())
	assert.Equal(t, 2, logs.FilterMessage("matrix ring").Len())
}
