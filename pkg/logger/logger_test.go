package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("booking created id=%s", "abc")
	log.Debug("hidden at info level")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking created id=abc")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNewNop_CloseIsSafe(t *testing.T) {
	log := NewNop()
	log.Error("goes nowhere: %v", 1)
	assert.NoError(t, log.Close())
}
