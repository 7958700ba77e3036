package logger_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"worldlang/internal/logger"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	quiet := logger.New(&buf, false, true)
	quiet.Debug("hidden")
	quiet.Info("hidden")
	quiet.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "WORLDLANG")

	buf.Reset()
	verbose := logger.New(&buf, true, true)
	verbose.Debug("trace", "pc", 3)
	assert.Contains(t, buf.String(), "trace")
	assert.Contains(t, buf.String(), "pc=3")
}

func TestForComponent(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Default()
	t.Cleanup(func() { log.SetDefault(previous) })

	log.SetDefault(logger.New(&buf, false, true))
	logger.For("host").Warn("hello")

	assert.Contains(t, buf.String(), "WORLDLANG/host")
}
