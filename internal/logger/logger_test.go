package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/zhijia2/DancingLogo/internal/config"
	"github.com/zhijia2/DancingLogo/internal/logger"
)

// fileOnly returns the default logging section writing to path with the
// console sink turned off.
func fileOnly(path, level string) config.LoggingConfig {
	l := config.Default().Logging
	l.Level = level
	l.Console = false
	l.LogFile = path
	l.Compress = false
	return l
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	logger.Sync()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestInitFromConfigLevels(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		level   string
		present []string
		absent  []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := filepath.Join(dir, tt.level+".log")
			require.NoError(t, logger.Init(fileOnly(path, tt.level).LoggerOptions()))

			logger.Debug("scene regenerated")
			logger.Info("viewport resized")
			logger.Warn("vsync unavailable")
			logger.Error("tick failed")

			out := readLog(t, path)
			for _, lvl := range tt.present {
				assert.Contains(t, out, lvl)
			}
			for _, lvl := range tt.absent {
				assert.NotContains(t, out, lvl)
			}
		})
	}
}

func TestInitFromConfigRotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dancinglogo.log")

	cfg := fileOnly(path, "info")
	cfg.MaxSizeMB = 1
	cfg.MaxBackups = 2
	require.NoError(t, logger.Init(cfg.LoggerOptions()))

	// About 3MB of output against a 1MB limit.
	line := strings.Repeat("r", 200)
	for i := 0; i < 15000; i++ {
		logger.Sugar.Infof("frame %d %s", i, line)
	}
	logger.Sync()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var rotated []string
	for _, e := range entries {
		if e.Name() != "dancinglogo.log" && strings.HasPrefix(e.Name(), "dancinglogo-") {
			rotated = append(rotated, e.Name())
		}
	}
	assert.NotEmpty(t, rotated, "expected rotated backups next to %s", path)
	assert.FileExists(t, path)
}

func TestNamedLoggerWritesComponent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "named.log")
	require.NoError(t, logger.Init(fileOnly(path, "info").LoggerOptions()))

	logger.Named("renderer").Info("session initialized")

	out := readLog(t, path)
	assert.Contains(t, out, "renderer")
	assert.Contains(t, out, "session initialized")
}

func TestInitWithoutSinksDiscards(t *testing.T) {
	cfg := config.Default().Logging
	cfg.Console = false
	require.NoError(t, logger.Init(cfg.LoggerOptions()))

	assert.False(t, logger.Log.Core().Enabled(zapcore.FatalLevel))
	logger.Info("discarded")
}

func TestInitRejectsBadOptions(t *testing.T) {
	before := logger.Log

	err := logger.Init(logger.Options{Level: "verbose"})
	assert.Error(t, err)

	err = logger.Init(logger.Options{File: logger.FileConfig{Path: "x.log", MaxBackups: -1}})
	assert.Error(t, err)

	assert.Same(t, before, logger.Log, "failed Init keeps the previous logger")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "debug",
		"warn":    "warn",
		"WARNING": "warn",
		"error":   "error",
		"info":    "info",
		"":        "info",
	}

	for in, want := range tests {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	_, err := logger.ParseLevel("verbose")
	assert.Error(t, err)
}
