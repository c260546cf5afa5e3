package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != "memory" {
		t.Errorf("Store = %q, want memory", cfg.Store)
	}
	if cfg.TargetScore != 24 {
		t.Errorf("TargetScore = %d, want 24", cfg.TargetScore)
	}
	if cfg.BotDelay != 1200*time.Millisecond {
		t.Errorf("BotDelay = %v, want 1.2s", cfg.BotDelay)
	}
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("CAIDA_STORE", "cassandra")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for unknown store backend")
	}
	if !strings.Contains(err.Error(), "unknown store backend") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRequiresPostgresDSN(t *testing.T) {
	t.Setenv("CAIDA_STORE", "postgres")
	t.Setenv("CAIDA_POSTGRES_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when postgres store has no DSN")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("CAIDA_TARGET_SCORE", "40")
	t.Setenv("CAIDA_BOT_DELAY", "50ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TargetScore != 40 {
		t.Errorf("TargetScore = %d, want 40", cfg.TargetScore)
	}
	if cfg.BotDelay != 50*time.Millisecond {
		t.Errorf("BotDelay = %v, want 50ms", cfg.BotDelay)
	}
}
