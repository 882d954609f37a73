package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return dir
}

func TestLoad_Flags(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG", "")
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("DATABASE_DSN", "")

	opts, err := Load([]string{"-a", ":9000", "-d", "postgres://x"})
	require.NoError(t, err)
	assert.Equal(t, ":9000", opts.Port)
	assert.Equal(t, "postgres://x", opts.DatabaseDSN)
	assert.Equal(t, "Info", opts.LogLevel)
}

func TestLoad_ConfigFileThenEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "server.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port":":7000","database_dsn":"from-file","log_level":"Debug"}`), 0600))
	t.Setenv("CONFIG", path)
	t.Setenv("SERVER_ADDRESS", ":8000")
	t.Setenv("DATABASE_DSN", "")

	opts, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, ":8000", opts.Port)
	assert.Equal(t, "from-file", opts.DatabaseDSN)
	assert.Equal(t, "Debug", opts.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_DSN=from-dotenv\n"), 0600))
	t.Setenv("CONFIG", "")
	t.Setenv("SERVER_ADDRESS", "")
	// godotenv never overrides variables that are already set, so start unset.
	t.Setenv("DATABASE_DSN", "")
	require.NoError(t, os.Unsetenv("DATABASE_DSN"))

	opts, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", opts.DatabaseDSN)
}

func TestLoad_Errors(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG", "")
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("DATABASE_DSN", "")

	_, err := Load(nil)
	assert.ErrorContains(t, err, "database DSN is required")

	_, err = Load([]string{"-d", "x", "-tls-cert", "server.crt"})
	assert.ErrorContains(t, err, "must be set together")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0600))
	_, err = Load([]string{"-d", "x", "-c", bad})
	assert.ErrorContains(t, err, "error while parsing config file")
}

func TestLoadClient(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PAQUETES_URL", "")

	opts, err := LoadClient([]string{"-timeout", "2s"})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:5000", opts.BaseURL)
	assert.Equal(t, 2*time.Second, opts.Timeout)

	t.Setenv("PAQUETES_URL", "https://api.example.com")
	opts, err = LoadClient(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", opts.BaseURL)

	_, err = LoadClient([]string{"-timeout", "0s"})
	assert.ErrorContains(t, err, "timeout must be positive")
}
