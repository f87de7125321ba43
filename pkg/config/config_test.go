package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.CacheTTLDuration() != 30*time.Minute {
		t.Errorf("ttl = %v, want 30m", cfg.CacheTTLDuration())
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("addr: \":9000\"\ncache_ttl: 5m\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FINSIGHT_ADDR", ":9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("addr = %q, env override must win", cfg.Addr)
	}
	if cfg.CacheTTLDuration() != 5*time.Minute {
		t.Errorf("ttl = %v, want 5m from yaml", cfg.CacheTTLDuration())
	}
}

func TestLoadMissingFileIsNotFatal(t *testing.T) {
	if _, err := Load("/nonexistent/server.yaml"); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestCacheTTLDurationMalformed(t *testing.T) {
	cfg := &Config{CacheTTL: "soon"}
	if cfg.CacheTTLDuration() != 30*time.Minute {
		t.Errorf("ttl = %v, want default for malformed value", cfg.CacheTTLDuration())
	}
}
