// Package config loads the bot's settings from a .env file and the process
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	KeyAdminName        = "ADMIN_NAME"
	KeyAdminPassword    = "ADMIN_PASSWORD"
	KeyDashboardBaseURL = "DASHBOARD_BASE_URL"
	KeyDebug            = "DEBUG"
	KeyDiscordToken     = "DISCORD_TOKEN"
	KeyLogLevel         = "LOG_LEVEL"
	KeyEnvFile          = "HELPMENU_ENV_FILE"
)

const (
	DefaultEnvFile          = ".env"
	DefaultDashboardBaseURL = "http://127.0.0.1:6185"
	DefaultLogLevel         = "info"
)

// Config holds the settings read at startup. The dashboard credentials can be
// wiped after use; everything else is read-only.
type Config struct {
	EnvFile          string
	DashboardBaseURL string
	Debug            bool
	DiscordToken     string
	LogLevel         string

	mu            sync.Mutex
	adminName     string
	adminPassword string
}

// Load reads envFile (if it exists) into the environment without overriding
// variables that are already set, then builds a Config from the environment.
// An empty envFile falls back to $HELPMENU_ENV_FILE, then ".env".
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = os.Getenv(KeyEnvFile)
	}
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	cfg := &Config{
		EnvFile:          envFile,
		DashboardBaseURL: strings.TrimRight(getenv(KeyDashboardBaseURL, DefaultDashboardBaseURL), "/"),
		DiscordToken:     os.Getenv(KeyDiscordToken),
		LogLevel:         getenv(KeyLogLevel, DefaultLogLevel),
		adminName:        os.Getenv(KeyAdminName),
		adminPassword:    os.Getenv(KeyAdminPassword),
	}

	if raw := strings.TrimSpace(os.Getenv(KeyDebug)); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", KeyDebug, raw, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

// Credentials returns the dashboard username and password.
func (c *Config) Credentials() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.adminName, c.adminPassword
}

// ClearCredentials blanks the dashboard credentials in memory, in the process
// environment and in the .env file they were loaded from.
func (c *Config) ClearCredentials() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.adminName, c.adminPassword = "", ""
	for _, key := range []string{KeyAdminName, KeyAdminPassword} {
		if err := os.Setenv(key, ""); err != nil {
			return fmt.Errorf("error clearing %s: %w", key, err)
		}
	}

	if c.EnvFile == "" {
		return nil
	}
	return scrubEnvFile(c.EnvFile, KeyAdminName, KeyAdminPassword)
}

// scrubEnvFile blanks keys in a .env file. A missing file is not an error.
// godotenv.Write rewrites the file in sorted key order without comments.
func scrubEnvFile(path string, keys ...string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	changed := false
	for _, key := range keys {
		if v, ok := env[key]; ok && v != "" {
			env[key] = ""
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := godotenv.Write(env, path); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
