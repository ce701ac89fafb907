package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/logger"
)

func TestOpenLogFile_CreatesDirectoryAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logs", "app.log")

	file, err := OpenLogFile(path)
	require.NoError(t, err)
	log := NewSlogLoggerAdapter(logger.NewWithWriter(file, slog.LevelInfo))
	log.Info("first", ports.F("n", 1))
	require.NoError(t, file.Close())

	file, err = OpenLogFile(path)
	require.NoError(t, err)
	log = NewSlogLoggerAdapter(logger.NewWithWriter(file, slog.LevelInfo))
	log.Info("second", ports.F("n", 2))
	require.NoError(t, file.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"first"`)
	assert.Contains(t, lines[1], `"msg":"second"`)
}

func TestOpenLogFile_EmptyPath(t *testing.T) {
	_, err := OpenLogFile("")
	assert.Error(t, err)
}
