package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setFlag[T any](t *testing.T, flag *T, v T) {
	t.Helper()
	old := *flag
	*flag = v
	t.Cleanup(func() { *flag = old })
}

func TestPlayReturnsConfigError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "snake.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("speed:\n  tick_rate: 0\n"), 0o600))

	setFlag(t, &flagConfig, cfgPath)
	setFlag(t, &flagLogFile, filepath.Join(dir, "logs", "snake.log"))
	setFlag(t, &flagDBPath, filepath.Join(dir, "runs.db"))

	err := play(context.Background())
	require.ErrorContains(t, err, "tick_rate")
	require.FileExists(t, flagLogFile)
	require.NoFileExists(t, flagDBPath, "run history is opened after the config loads")
}

func TestOpenLogFileCloser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snake.log")
	w, closeLog := openLogFile(path)

	_, err := w.Write([]byte("hello\n"))
	require.NoError(t, err)
	closeLog()

	_, err = w.Write([]byte("after\n"))
	require.ErrorIs(t, err, os.ErrClosed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(data))
}

func TestOpenLogFileDisabled(t *testing.T) {
	w, closeLog := openLogFile("")
	defer closeLog()

	_, err := w.Write([]byte("dropped"))
	require.NoError(t, err)
}
