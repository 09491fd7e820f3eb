package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want default", cfg.ListenAddr)
	}
	if cfg.Cache.Backend != CacheMemory {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, CacheMemory)
	}
	if cfg.API.Timeout.Duration() != 0 {
		t.Errorf("API.Timeout = %v, want 0 (no timeout)", cfg.API.Timeout.Duration())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketchfeed.toml")
	content := `
listen_addr = ":9000"

[api]
base_url = "http://localhost:5000/api"
timeout = "30s"
old_curation_id = "111"
new_curation_id = "222"
priority = ["3", "1", "2"]

[cache]
backend = "redis"
ttl = "5m"
redis_addr = "redis:6379"

[assets]
dir = "static/images"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout.Duration() != 30*time.Second {
		t.Errorf("API.Timeout = %v", cfg.API.Timeout.Duration())
	}
	if cfg.API.OldCurationID != "111" || cfg.API.NewCurationID != "222" {
		t.Errorf("curation ids = %q, %q", cfg.API.OldCurationID, cfg.API.NewCurationID)
	}
	if len(cfg.API.Priority) != 3 || cfg.API.Priority[0] != "3" {
		t.Errorf("Priority = %v", cfg.API.Priority)
	}
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.RedisAddr != "redis:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration() != 5*time.Minute {
		t.Errorf("Cache.TTL = %v", cfg.Cache.TTL.Duration())
	}
	if cfg.Assets.Dir != "static/images" {
		t.Errorf("Assets.Dir = %q", cfg.Assets.Dir)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("listen_addr = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject malformed TOML")
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[cache]\nbackend = \"mongo\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an unknown cache backend")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SKETCHFEED_ADDR", ":7777")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ListenAddr != ":7777" {
		t.Errorf("ListenAddr = %q, want env override", cfg.ListenAddr)
	}
}
