package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aross50/465LinRegression/core/model"
	"github.com/aross50/465LinRegression/pkg/errors"
	"github.com/aross50/465LinRegression/pkg/log"
)

const wantTable = "Training data  Prediction     Euclidean distance\n" +
	"(x, y)         Go                            \n" +
	"(-1.1, -1.7)   -1.90717       0.20717        \n" +
	"(0.1, 2.4)     1.71590        0.68410        \n" +
	"(1.2, 5.0)     5.03704        0.03704        \n" +
	"(2.3, 7.3)     8.35818        1.05818        \n" +
	"(3.1, 10.9)    10.77355       0.12645        \n" +
	"(4.1, 12.5)    13.79277       1.29277        \n" +
	"(4.8, 16.2)    15.90622       0.29378        \n" +
	"(5.7, 19.7)    18.62352       1.07648        \n"

// runCLI runs the command and restores the global logger afterwards.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	prev := log.GetLogger()
	t.Cleanup(func() {
		log.SetLogger(prev)
		errors.SetZerologWarnFunc(nil)
	})

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func splitOutput(t *testing.T, stdout string) (theta []float64, table string) {
	t.Helper()
	first, table, ok := strings.Cut(stdout, "\n")
	require.True(t, ok)
	require.True(t, strings.HasPrefix(first, "Computed parameters: ["), first)
	require.True(t, strings.HasSuffix(first, "]"), first)

	inner := strings.TrimSuffix(strings.TrimPrefix(first, "Computed parameters: ["), "]")
	for _, field := range strings.Fields(inner) {
		v, err := strconv.ParseFloat(field, 64)
		require.NoError(t, err)
		theta = append(theta, v)
	}
	return theta, table
}

func TestRunDefault(t *testing.T) {
	code, stdout, stderr := runCLI(t)
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, stderr)

	theta, table := splitOutput(t, stdout)
	require.Len(t, theta, 2)
	assert.InDelta(t, 1.413973518447103, theta[0], 1e-9)
	assert.InDelta(t, 3.0192184085358016, theta[1], 1e-9)
	assert.Equal(t, wantTable, table)
}

func TestRunSolversAgree(t *testing.T) {
	for _, solver := range []string{"inverse", "qr", "reciprocal"} {
		t.Run(solver, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "-solver", solver)
			require.Equal(t, exitOK, code, stderr)
			_, table := splitOutput(t, stdout)
			assert.Equal(t, wantTable, table)
		})
	}
}

func TestRunLabel(t *testing.T) {
	code, stdout, _ := runCLI(t, "-label", "Python")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "\n(x, y)         Python                        \n")
}

func TestRunSingularData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n2,1\n2,3\n2,5\n"), 0o600))

	code, stdout, stderr := runCLI(t, "-data", path, "-log-console=false")
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "singular matrix")
	assert.Contains(t, stderr, `"level":"error"`)
}

func TestRunDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n0,1\n1,3\n2,5\n"), 0o600))

	code, stdout, stderr := runCLI(t, "-data", path)
	require.Equal(t, exitOK, code, stderr)

	theta, table := splitOutput(t, stdout)
	assert.InDelta(t, 1.0, theta[0], 1e-12)
	assert.InDelta(t, 2.0, theta[1], 1e-12)
	assert.Contains(t, table, "(2.0, 5.0)     5.00000        0.00000        \n")
}

func TestRunMissingDataFile(t *testing.T) {
	code, _, stderr := runCLI(t, "-data", filepath.Join(t.TempDir(), "none.csv"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "none.csv")
}

func TestRunPlotAndExport(t *testing.T) {
	dir := t.TempDir()
	plotPath := filepath.Join(dir, "fit.svg")
	exportPath := filepath.Join(dir, "params.json")

	code, _, stderr := runCLI(t, "-plot", plotPath, "-export", exportPath, "-solver", "qr")
	require.Equal(t, exitOK, code, stderr)

	info, err := os.Stat(plotPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	f, err := os.Open(exportPath)
	require.NoError(t, err)
	defer f.Close()

	params, err := model.ReadParamsJSON(f)
	require.NoError(t, err)
	assert.Equal(t, "LinearRegression", params.ModelType)
	assert.Equal(t, "qr", params.Solver)
	assert.Equal(t, 8, params.NSamples)
	assert.InDelta(t, 1.413973518447103, params.Intercept, 1e-9)
	require.Len(t, params.Coefficients, 1)
	assert.InDelta(t, 3.0192184085358016, params.Coefficients[0], 1e-9)
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"-h"}, exitOK},
		{"unknown flag", []string{"-nope"}, exitUsage},
		{"unknown solver", []string{"-solver", "lu"}, exitUsage},
		{"bad log level", []string{"-log-level", "loud"}, exitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := runCLI(t, tt.args...)
			assert.Equal(t, tt.want, code)
			assert.Empty(t, stdout)
		})
	}
}
