package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"trends-dashboard/internal/logger"
)

func TestSetupLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	for _, mode := range []string{"release", "debug"} {
		t.Run(mode, func(t *testing.T) {
			l, err := logger.SetupLogger(logFile, mode)
			require.NoError(t, err)
			require.Same(t, l, logger.Logger)

			l.Info("search volume")
			_ = l.Sync()

			data, err := os.ReadFile(logFile)
			require.NoError(t, err)
			require.Contains(t, string(data), "search volume")
		})
	}
}

func TestSetupLoggerWithoutFile(t *testing.T) {
	l, err := logger.SetupLogger("", "development")
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestAccessLogWriter(t *testing.T) {
	w, err := logger.NewAccessLogWriter("")
	require.NoError(t, err)
	require.Equal(t, os.Stdout, w)

	path := filepath.Join(t.TempDir(), "access.log")
	w, err = logger.NewAccessLogWriter(path)
	require.NoError(t, err)

	_, err = w.Write([]byte("GET /search-volume 200\n"))
	require.NoError(t, err)

	matches, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	require.Len(t, matches, 1)
}
