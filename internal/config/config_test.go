package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DECK_SOURCE", "FETCH_TIMEOUT", "DATABASE_TYPE", "DB_PATH", "SHUFFLE_SEED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %v, want %v", cfg.ServerPort, "8080")
	}
	if cfg.DeckSource != "./data/deck.csv" {
		t.Errorf("DeckSource = %v, want %v", cfg.DeckSource, "./data/deck.csv")
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want %v", cfg.FetchTimeout, 10*time.Second)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %v, want %v", cfg.DatabaseType, "sqlite")
	}
	if cfg.ShuffleSeed != 0 {
		t.Errorf("ShuffleSeed = %v, want 0", cfg.ShuffleSeed)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DECK_SOURCE", "https://example.com/deck.csv")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("SHUFFLE_SEED", "42")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %v, want %v", cfg.ServerPort, "9090")
	}
	if cfg.DeckSource != "https://example.com/deck.csv" {
		t.Errorf("DeckSource = %v", cfg.DeckSource)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("FetchTimeout = %v, want %v", cfg.FetchTimeout, 3*time.Second)
	}
	if cfg.ShuffleSeed != 42 {
		t.Errorf("ShuffleSeed = %v, want 42", cfg.ShuffleSeed)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")
	t.Setenv("SHUFFLE_SEED", "abc")

	cfg := Load()

	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want default", cfg.FetchTimeout)
	}
	if cfg.ShuffleSeed != 0 {
		t.Errorf("ShuffleSeed = %v, want default", cfg.ShuffleSeed)
	}
}
