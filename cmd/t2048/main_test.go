package main

import "testing"

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":2048", "2048"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:23", "23"},
		{"nonsense", "nonsense"},
	}

	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestSeedFlag(t *testing.T) {
	old := flagSeed
	t.Cleanup(func() { flagSeed = old })

	flagSeed = 99
	if seed() != 99 {
		t.Errorf("seed() = %d, want 99", seed())
	}

	flagSeed = 0
	if seed() == 0 {
		t.Error("seed() should fall back to a time-based value")
	}
}
