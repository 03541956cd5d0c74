package app

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, NewConfig(), cfg)

	cols, rows := cfg.GridSize()
	require.Equal(t, 134, cols)
	require.Equal(t, 101, rows)
}

func TestParseFlagsAndPositional(t *testing.T) {
	cfg, err := Parse([]string{"-width", "300", "-cell_size", "10", "-r", "-seed", "9", "life", "extra"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 300, cfg.Width)
	require.Equal(t, 10, cfg.CellSize)
	require.True(t, cfg.Resizable)
	require.Equal(t, int64(9), cfg.Seed)
	require.Equal(t, "life", cfg.Automaton)
	require.Equal(t, []string{"extra"}, cfg.Extra)
}

func TestParseRejectsSmallSizes(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "0"},
		{"-height", "-5"},
		{"-cell_size", "0"},
		{"-tps", "0"},
		{"-shape", "triangle"},
		{"-log-level", "loud"},
	} {
		_, err := Parse(args, &bytes.Buffer{})
		require.ErrorIs(t, err, ErrInvalidConfig, "args %v", args)
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"-h"}, &out)
	require.ErrorIs(t, err, flag.ErrHelp)
	require.Contains(t, out.String(), "AUTOMATON")
	require.Contains(t, out.String(), "-cell_size")
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.yaml")
	doc := "width: 400\nheight: 200\ncell_size: 8\nseed_mode: noise\ndensity: 0.3\nshape: square\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Parse([]string{"-config", path, "-height", "240"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 400, cfg.Width)
	require.Equal(t, 240, cfg.Height, "flags override the file")
	require.Equal(t, "noise", cfg.SeedMode)
	require.Equal(t, 0.3, cfg.Density)
	require.Equal(t, path, cfg.File)

	cols, rows := cfg.GridSize()
	require.Equal(t, 50, cols)
	require.Equal(t, 30, rows)
	require.Equal(t, map[string]string{"w": "50", "h": "30", "seed_mode": "noise", "density": "0.3"}, cfg.SimConfig())
}

func TestParseConfigFileErrors(t *testing.T) {
	_, err := Parse([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &bytes.Buffer{})
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [1, 2\n"), 0o644))
	_, err = Parse([]string{"-config", path}, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "debug"
	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}
