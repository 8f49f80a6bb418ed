package logger_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usersvc/internal/pkg/logger"
)

func TestNew_WritesRotatedFile(t *testing.T) {
	dir := t.TempDir()

	l, err := logger.New(logger.Options{Level: "debug", Folder: dir, FileName: "usersvc.log"})
	require.NoError(t, err)

	l.Info("Usuário criado.", map[string]interface{}{"user_id": "user-1"})
	l.Error("Erro ao salvar usuário.", errors.New("db down"))
	_ = l.Sync()

	matches, err := filepath.Glob(filepath.Join(dir, "usersvc.log.*"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"Usuário criado."`)
	assert.Contains(t, string(content), `"user_id":"user-1"`)
	assert.Contains(t, string(content), `"error":"db down"`)
	assert.Contains(t, string(content), `"hostname"`)
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	dir := t.TempDir()

	l, err := logger.New(logger.Options{Level: "warn", Folder: dir})
	require.NoError(t, err)

	l.Debug("não deve aparecer", nil)
	l.Warn("deve aparecer", nil)
	_ = l.Sync()

	matches, _ := filepath.Glob(filepath.Join(dir, "server.log.*"))
	require.Len(t, matches, 1)
	content, _ := os.ReadFile(matches[0])
	assert.NotContains(t, string(content), "não deve aparecer")
	assert.Contains(t, string(content), "deve aparecer")
}

func TestNewNop_ImplementsInterface(t *testing.T) {
	var l logger.Logger = logger.NewNop()
	assert.NotPanics(t, func() { l.Info("ok", nil) })
}
