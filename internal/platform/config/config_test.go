package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	DBPath string `env:"DB_PATH" envDefault:"data/campaigns.db"`
	Port   int    `env:"TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnvWithLookup(&cfg, map[string]string{}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("port = %d, want 123", cfg.Port)
	}
	if cfg.DBPath != "data/campaigns.db" {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("DM_ASSISTANT_DB_PATH", "/tmp/dm.db")
	t.Setenv("DB_PATH", "/tmp/ignored.db")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.DBPath != "/tmp/dm.db" {
		t.Fatalf("db path = %q, want prefixed value", cfg.DBPath)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig

	err := ParseEnvWithLookup(&cfg, map[string]string{"DM_ASSISTANT_TEST_PORT": "not-an-int"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
