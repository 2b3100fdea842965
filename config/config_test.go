package config

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aross50/465LinRegression/linear"
	"github.com/aross50/465LinRegression/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Data)
	assert.Equal(t, "inverse", cfg.Solver)
	assert.Equal(t, linear.DefaultMaxIterations, cfg.MaxIterations)
	assert.Equal(t, "", cfg.Plot)
	assert.Equal(t, "", cfg.Export)
	assert.Equal(t, "Go", cfg.Label)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.LogConsole)

	solver, err := cfg.SolverValue()
	require.NoError(t, err)
	assert.Equal(t, linear.SolverInverse, solver)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("LINREG_SOLVER", "qr")
	t.Setenv("LINREG_LABEL", "Python")
	t.Setenv("LINREG_LOG_LEVEL", "debug")
	t.Setenv("LINREG_LOG_CONSOLE", "false")

	cfg, err := Load(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "qr", cfg.Solver)
	assert.Equal(t, "Python", cfg.Label)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogConsole)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("LINREG_SOLVER", "qr")
	t.Setenv("LINREG_MAX_ITERATIONS", "10")

	cfg, err := Load([]string{
		"-solver", "reciprocal",
		"-max-iter", "5",
		"-plot", "fit.svg",
		"-export", "params.json",
		"-data", "points.csv",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "reciprocal", cfg.Solver)
	assert.Equal(t, 5, cfg.MaxIterations)
	assert.Equal(t, "fit.svg", cfg.Plot)
	assert.Equal(t, "params.json", cfg.Export)
	assert.Equal(t, "points.csv", cfg.Data)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown solver", []string{"-solver", "cholesky"}},
		{"zero iterations", []string{"-max-iter", "0"}},
		{"bad log level", []string{"-log-level", "trace"}},
		{"bad plot format", []string{"-plot", "fit.bmp"}},
		{"positional args", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			var valErr *errors.ValidationError
			assert.True(t, errors.As(err, &valErr), "got %v", err)
		})
	}
}

func TestLoadFlagErrors(t *testing.T) {
	var out bytes.Buffer
	_, err := Load([]string{"-no-such-flag"}, &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "-no-such-flag")

	out.Reset()
	_, err = Load([]string{"-h"}, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "-solver")
}

func TestLoadBadEnvironment(t *testing.T) {
	t.Setenv("LINREG_MAX_ITERATIONS", "many")
	_, err := Load(nil, &bytes.Buffer{})
	assert.Error(t, err)
}
