package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/claudeisland/island-hook/internal/transport"
)

// Config holds hook configuration. Everything is optional: with no config
// file and no environment the hook talks to the local unix socket.
type Config struct {
	// Socket is the unix socket path the app listens on.
	Socket string `mapstructure:"socket"`
	// TCP switches transport to "host:port" or "port" (remote sessions).
	TCP string `mapstructure:"tcp"`
	// RemoteHost marks the session as remote and enables tmux pane discovery.
	RemoteHost string `mapstructure:"remote_host"`
	// Timeout bounds connect/send and the permission decision wait.
	Timeout string `mapstructure:"timeout"`
	Verbose bool   `mapstructure:"verbose"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Socket:  transport.DefaultSocketPath,
		Timeout: "300s",
	}
}

// TimeoutDuration parses the timeout, falling back to the transport default
// on malformed values rather than failing the hook.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return transport.DefaultTimeout
	}
	return d
}

// Load loads configuration from files and environment
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".claude-island")
	v.SetConfigType("yaml")

	// Config paths, lowest precedence first
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "claude-island"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("CLAUDE_ISLAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// These names predate the config file and stay bound verbatim
	v.BindEnv("tcp", "CLAUDE_ISLAND_TCP")
	v.BindEnv("remote_host", "CLAUDE_ISLAND_REMOTE_HOST")
	v.BindEnv("socket", "CLAUDE_ISLAND_SOCKET")
	v.BindEnv("timeout", "CLAUDE_ISLAND_TIMEOUT")
	v.BindEnv("verbose", "CLAUDE_ISLAND_VERBOSE")

	cfg := Default()
	v.SetDefault("socket", cfg.Socket)
	v.SetDefault("timeout", cfg.Timeout)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found; use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
