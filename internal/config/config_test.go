package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldlang/internal/config"
	"worldlang/pkg/interpreter"
)

func TestDecodeConstants(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
constants:
  RED: 2
  BIG: 0x10
  BELOW: -1
  HALF: 0.5
  TITLE: "world"
  PLAIN: tree
max_steps: 100
`))
	require.NoError(t, err)

	assert.Equal(t, config.Constants{
		"RED":   interpreter.Uint(2),
		"BIG":   interpreter.Uint(16),
		"BELOW": interpreter.Double(-1),
		"HALF":  interpreter.Double(0.5),
		"TITLE": interpreter.String("world"),
		"PLAIN": interpreter.String("tree"),
	}, cfg.Constants)
	assert.Equal(t, 100, cfg.MaxSteps)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Constants)
	assert.Zero(t, cfg.MaxSteps)
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "colour: red\n",
		"list constant":  "constants:\n  A: [1, 2]\n",
		"bool constant":  "constants:\n  A: true\n",
		"constants list": "constants: [1]\n",
		"negative steps": "max_steps: -3\n",
		"nan constant":   "constants:\n  A: .nan\n",
		"empty name":     "constants:\n  \"\": 1\n",
	}

	for name, doc := range tests {
		_, err := config.Decode(strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}

func TestLoadResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "host.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world: maps/one.txt\nscript: /abs/main.wl\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "maps", "one.txt"), cfg.World)
	assert.Equal(t, "/abs/main.wl", cfg.Script)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: open")
}
