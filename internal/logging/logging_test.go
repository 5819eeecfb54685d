package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsnake/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	log, err := New(config.Log{Level: "info", Encoding: "json", Output: []string{path}})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("apple eaten")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"apple eaten"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.Log{Level: "chatty", Encoding: "console"})
	require.Error(t, err)
}

func TestNewRejectsBadEncoding(t *testing.T) {
	_, err := New(config.Log{Level: "info", Encoding: "xml"})
	require.Error(t, err)
}
