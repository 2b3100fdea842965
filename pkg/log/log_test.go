package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lrerrors "github.com/aross50/465LinRegression/pkg/errors"
)

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationFit)
	testLogger.Warn("warning message")
	testLogger.Error("error message", fmt.Errorf("test error"), ErrorCodeKey, ErrorSingularMatrix)

	require.NotEmpty(t, buffer.String())
	assert.True(t, testLogger.ContainsMessage("debug message"))
	assert.True(t, testLogger.ContainsMessage("warning message"))
	assert.True(t, testLogger.ContainsField("key1", "value1"))
	assert.True(t, testLogger.ContainsField("number", 42.0))
	assert.True(t, testLogger.ContainsField("error", "test error"))
	assert.True(t, testLogger.ContainsField(ErrorCodeKey, ErrorSingularMatrix))

	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestTestLoggerWithAndLevels(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	assert.True(t, testLogger.Enabled(ctx, LevelInfo))
	assert.False(t, testLogger.Enabled(ctx, LevelDebug))

	child := testLogger.With(ModelNameKey, "LinearRegression", SolverKey, "qr")
	child.Debug("hidden")
	child.Info("fit completed", SamplesKey, 8)

	assert.False(t, testLogger.ContainsMessage("hidden"))
	assert.True(t, testLogger.ContainsField(ModelNameKey, "LinearRegression"))
	assert.True(t, testLogger.ContainsField(SolverKey, "qr"))
	assert.True(t, testLogger.ContainsField(SamplesKey, 8.0))
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("dropped")
	logger.With(ModelNameKey, "LinearRegression").Info("fit completed", SamplesKey, 8, SlopeKey, 3.5)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "fit completed", entry["message"])
	assert.Equal(t, "LinearRegression", entry[ModelNameKey])
	assert.Equal(t, 8.0, entry[SamplesKey])
	assert.Equal(t, 3.5, entry[SlopeKey])

	assert.True(t, logger.Enabled(context.Background(), LevelError))
	assert.False(t, logger.Enabled(context.Background(), LevelDebug))
}

func TestZerologLoggerErrorDetail(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	err := lrerrors.NewDimensionError("Predict", 2, 3, 1)
	logger.Error("predict failed", err, OperationKey, OperationPredict)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Contains(t, entry["error"], "dimension mismatch")
	assert.Equal(t, OperationPredict, entry[OperationKey])

	detail, ok := entry["error.detail"].(map[string]interface{})
	require.True(t, ok, "expected structured error detail")
	assert.Equal(t, "DimensionError", detail["type"])

	st, _ := entry[StacktraceKey].(string)
	assert.NotEmpty(t, st)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				var vErr *lrerrors.ValidationError
				assert.True(t, lrerrors.As(err, &vErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLoggerRoutesWarnings(t *testing.T) {
	prev := GetLogger()
	defer func() {
		SetLogger(prev)
		lrerrors.SetZerologWarnFunc(nil)
	}()

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, "warn", false))

	lrerrors.Warn(lrerrors.NewIllConditionedWarning("ComputeParameters", 1e12, 1e10))

	out := buf.String()
	assert.Contains(t, out, `"type":"IllConditionedWarning"`)
	assert.Contains(t, out, `"level":"warn"`)

	assert.Error(t, SetupLogger(&buf, "loud", false))
}
