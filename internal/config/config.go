// Package config provides YAML-based configuration loading for t2048.
package config

import (
	"fmt"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig tunes the board engine and the TUI loop.
type GameConfig struct {
	Spawn4Probability float64 `yaml:"spawn4_probability"`
	TickRate          int     `yaml:"tick_rate"`
}

// StorageConfig locates the high score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // Empty means the default path
}

// SSHConfig configures the remote play server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogConfig sets the log verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if c.Game.Spawn4Probability < 0 || c.Game.Spawn4Probability > 1 {
		return fmt.Errorf("game.spawn4_probability must be within [0, 1], got %v", c.Game.Spawn4Probability)
	}
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("game.tick_rate must be positive, got %d", c.Game.TickRate)
	}
	if c.SSH.Address == "" {
		return fmt.Errorf("ssh.address must not be empty")
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("ssh.idle_timeout_minutes must not be negative, got %d", c.SSH.IdleTimeoutMinutes)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}
