package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, true)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("input_dir: puzzles\nworkers: 4\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Config{InputDir: "puzzles", AnswersDir: "answers", LogLevel: "debug", Workers: 4}, cfg)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "input_dirs: x\n",
		"bad workers":  "workers: 0\n",
		"bad level":    "log_level: loud\n",
		"empty inputs": "input_dir: \"\"\n",
		"not yaml":     "workers: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFile)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path, true)
			require.Error(t, err)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	want := Config{InputDir: "in", AnswersDir: "out", LogLevel: "warn", Workers: 2, MetricsFile: "aoc.prom", NoColor: true}
	require.NoError(t, Write(path, want))
	got, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParseLevel("verbose")
	require.Error(t, err)
}
