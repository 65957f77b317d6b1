package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults are invalid: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
game:
  spawn4_probability: 0.25
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.Spawn4Probability != 0.25 {
		t.Errorf("spawn4_probability = %v, want 0.25", cfg.Game.Spawn4Probability)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Game.TickRate != Default().Game.TickRate {
		t.Errorf("tick_rate = %d, want default %d", cfg.Game.TickRate, Default().Game.TickRate)
	}
	if cfg.SSH.Address != ":2048" {
		t.Errorf("ssh.address = %q, want :2048", cfg.SSH.Address)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := writeFile(t, dir, "bad.yaml", "game: [unclosed")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("malformed config error = %v", err)
	}

	invalid := writeFile(t, dir, "invalid.yaml", "game:\n  spawn4_probability: 1.5\n")
	if _, err := Load(invalid); err == nil {
		t.Error("out-of-range probability should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"never spawn 4", func(c *Config) { c.Game.Spawn4Probability = 0 }, true},
		{"always spawn 4", func(c *Config) { c.Game.Spawn4Probability = 1 }, true},
		{"negative probability", func(c *Config) { c.Game.Spawn4Probability = -0.1 }, false},
		{"zero tick rate", func(c *Config) { c.Game.TickRate = 0 }, false},
		{"empty address", func(c *Config) { c.SSH.Address = "" }, false},
		{"negative timeout", func(c *Config) { c.SSH.IdleTimeoutMinutes = -1 }, false},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestIdleTimeout(t *testing.T) {
	s := SSHConfig{IdleTimeoutMinutes: 3}
	if s.IdleTimeout().Minutes() != 3 {
		t.Errorf("IdleTimeout() = %v, want 3m", s.IdleTimeout())
	}
}

func TestUserPath(t *testing.T) {
	t.Setenv("HOME", "/tmp/t2048-home")
	got := UserPath("config.yaml")
	want := filepath.Join("/tmp/t2048-home", AppDir, "config.yaml")
	if got != want {
		t.Errorf("UserPath() = %q, want %q", got, want)
	}
}
