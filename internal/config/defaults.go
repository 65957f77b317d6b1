package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Spawn4Probability: 0.1,
			TickRate:          30,
		},
		SSH: SSHConfig{
			Address:            ":2048",
			HostKey:            ".ssh/t2048_ed25519",
			IdleTimeoutMinutes: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
