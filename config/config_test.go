package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv unsets every key Load reads and restores them when t ends.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{KeyAdminName, KeyAdminPassword, KeyDashboardBaseURL, KeyDebug, KeyDiscordToken, KeyLogLevel, KeyEnvFile} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	isolateEnv(t)
	path := writeEnv(t, "ADMIN_NAME=admin\nADMIN_PASSWORD=secret\nDASHBOARD_BASE_URL=http://dash.local:6185/\nDEBUG=true\nDISCORD_TOKEN=abc\nLOG_LEVEL=debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	name, pass := cfg.Credentials()
	assert.Equal(t, "admin", name)
	assert.Equal(t, "secret", pass)
	assert.Equal(t, "http://dash.local:6185", cfg.DashboardBaseURL)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "abc", cfg.DiscordToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, path, cfg.EnvFile)
}

func TestLoadDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDashboardBaseURL, cfg.DashboardBaseURL)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.Debug)

	name, pass := cfg.Credentials()
	assert.Empty(t, name)
	assert.Empty(t, pass)
}

func TestLoadEnvironmentWins(t *testing.T) {
	isolateEnv(t)
	path := writeEnv(t, "ADMIN_NAME=fromfile\n")
	t.Setenv(KeyAdminName, "fromenv")

	cfg, err := Load(path)
	require.NoError(t, err)
	name, _ := cfg.Credentials()
	assert.Equal(t, "fromenv", name)
}

func TestLoadEnvFileFromEnvironment(t *testing.T) {
	isolateEnv(t)
	path := writeEnv(t, "DISCORD_TOKEN=xyz\n")
	t.Setenv(KeyEnvFile, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, cfg.EnvFile)
	assert.Equal(t, "xyz", cfg.DiscordToken)
}

func TestLoadRejectsBadDebug(t *testing.T) {
	isolateEnv(t)
	t.Setenv(KeyDebug, "sometimes")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DEBUG value")
}

func TestClearCredentials(t *testing.T) {
	isolateEnv(t)
	path := writeEnv(t, "ADMIN_NAME=admin\nADMIN_PASSWORD=secret\nDASHBOARD_BASE_URL=http://dash.local\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.ClearCredentials())

	name, pass := cfg.Credentials()
	assert.Empty(t, name)
	assert.Empty(t, pass)
	assert.Empty(t, os.Getenv(KeyAdminName))
	assert.Empty(t, os.Getenv(KeyAdminPassword))

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "", env[KeyAdminName])
	assert.Equal(t, "", env[KeyAdminPassword])
	assert.Equal(t, "http://dash.local", env[KeyDashboardBaseURL])
}

func TestClearCredentialsWithoutFile(t *testing.T) {
	isolateEnv(t)
	t.Setenv(KeyAdminName, "a")
	t.Setenv(KeyAdminPassword, "b")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	name, _ := cfg.Credentials()
	require.Equal(t, "a", name)

	require.NoError(t, cfg.ClearCredentials())
	name, _ = cfg.Credentials()
	assert.Empty(t, name)
	assert.Empty(t, os.Getenv(KeyAdminName))
}

func TestInitLogger(t *testing.T) {
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })

	var buf bytes.Buffer
	InitLoggerTo(&buf, "warn")
	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel())
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	InitLoggerTo(&buf, "not-a-level")
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())
	InitLoggerTo(&buf, "")
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())
}
