// Package config handles the ~/.anonctl configuration directory and the
// resolution of the anonymization service address.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/tidwall/jsonc"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

const (
	// DefaultServerURL is the anonymization service address when nothing is configured
	DefaultServerURL = "http://localhost:8000"
	// DefaultTimeout bounds one anonymize request; the service may run several
	// validate/repair iterations before responding
	DefaultTimeout = 120 * time.Second

	// EnvServerURL overrides the configured server address
	EnvServerURL = "ANONCTL_SERVER"
	// EnvTimeout overrides the configured timeout, in seconds
	EnvTimeout = "ANONCTL_TIMEOUT"
)

var (
	// ConfigDir is the global configuration directory (~/.anonctl)
	ConfigDir string

	// ConfigFile is the jsonc settings file inside ConfigDir
	ConfigFile string
)

// Settings are the resolved client settings.
type Settings struct {
	ServerURL string        `json:"server_url"`
	Timeout   time.Duration `json:"-"`

	// TimeoutSeconds is the on-disk representation of Timeout.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// defaultConfigFile is seeded into ConfigDir on first run. jsonc so the
// comments survive in the user's file.
var defaultConfigFile = []byte(`{
  // Base URL of the anonymization service
  "server_url": "http://localhost:8000",

  // Request timeout in seconds. Anonymization runs an iterative
  // validate/repair loop server-side, so leave headroom.
  "timeout_seconds": 120
}
`)

// Initialize sets up the configuration directory and seeds the default
// config file. It creates ~/.anonctl/ if it doesn't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".anonctl")
	ConfigFile = filepath.Join(ConfigDir, "config.jsonc")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	if _, err := os.Stat(ConfigFile); os.IsNotExist(err) {
		if err := os.WriteFile(ConfigFile, defaultConfigFile, FilePermissions); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	}

	return nil
}

// Load reads the config file, falling back to defaults when it is missing.
func Load() (Settings, error) {
	settings := Settings{
		ServerURL:      DefaultServerURL,
		Timeout:        DefaultTimeout,
		TimeoutSeconds: int(DefaultTimeout / time.Second),
	}

	data, err := os.ReadFile(ConfigFile)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), &settings); err != nil {
		return settings, fmt.Errorf("failed to parse config file %s: %w", ConfigFile, err)
	}
	if settings.ServerURL == "" {
		settings.ServerURL = DefaultServerURL
	}
	if settings.TimeoutSeconds > 0 {
		settings.Timeout = time.Duration(settings.TimeoutSeconds) * time.Second
	} else {
		settings.Timeout = DefaultTimeout
	}

	return settings, nil
}

// Resolve produces the effective settings. Precedence, highest first:
// the --server flag, process environment, variables from --env-file,
// the config file, built-in defaults.
func Resolve(flagServer, envFile string) (Settings, error) {
	settings, err := Load()
	if err != nil {
		return settings, err
	}

	if envFile != "" {
		// godotenv.Load never overwrites variables already in the process
		// environment, which is exactly the precedence we want.
		if err := godotenv.Load(envFile); err != nil {
			return settings, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvServerURL); v != "" {
		settings.ServerURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return settings, fmt.Errorf("invalid %s value %q: want a positive number of seconds", EnvTimeout, v)
		}
		settings.Timeout = time.Duration(seconds) * time.Second
		settings.TimeoutSeconds = seconds
	}

	if flagServer != "" {
		settings.ServerURL = flagServer
	}

	return settings, nil
}
