package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleIni = `
[station]
host = 0.0.0.0
port = 9394

[database]
root = /var/dim/db
protected_root = /var/dim/protected

[group]
supervisors = admin1@anywhere,admin2@anywhere

[ans]
assistant = assistant@anywhere
usher = usher@anywhere
`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bot.ini")
	require.NoError(t, os.WriteFile(path, []byte(sampleIni), 0o644))
	return path
}

func TestLoadParsesSections(t *testing.T) {
	path := writeSample(t)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Station.Host)
	require.Equal(t, 9394, cfg.Station.Port)
	require.Equal(t, "/var/dim/db", cfg.Database.Root)
	require.Equal(t, "/var/dim/protected", cfg.Database.ProtectedRoot)
	require.ElementsMatch(t, []string{"admin1@anywhere", "admin2@anywhere"}, cfg.Group.Supervisors)

	assistant, ok := cfg.Ans("assistant")
	require.True(t, ok)
	require.Equal(t, "assistant@anywhere", assistant)

	usher, ok := cfg.Ans("usher")
	require.True(t, ok)
	require.Equal(t, "usher@anywhere", usher)

	_, ok = cfg.Ans("unknown")
	require.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
}
