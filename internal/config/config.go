// Package config loads sketchfeed configuration from an optional TOML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in the config file.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Config holds all application configuration. The zero value is not usable
// directly; obtain one through [Default] or [Load] so defaults apply.
type Config struct {
	// ListenAddr is the HTTP listen address for the serve command.
	// Overridable with SKETCHFEED_ADDR.
	ListenAddr string `toml:"listen_addr"`

	API    APIConfig    `toml:"api"`
	Cache  CacheConfig  `toml:"cache"`
	Assets AssetsConfig `toml:"assets"`
}

// APIConfig configures the upstream OpenProcessing client.
type APIConfig struct {
	// BaseURL is the API root. Empty uses the public API.
	BaseURL string `toml:"base_url"`

	// Timeout bounds upstream requests. 0 means no timeout.
	Timeout duration `toml:"timeout"`

	// OldCurationID and NewCurationID override the merged collections.
	OldCurationID string `toml:"old_curation_id"`
	NewCurationID string `toml:"new_curation_id"`

	// Priority overrides the editorial pin list, in order.
	Priority []string `toml:"priority"`
}

// CacheConfig selects and tunes the memoization backend.
type CacheConfig struct {
	// Backend is "memory", "redis", or "none".
	Backend string `toml:"backend"`

	// TTL bounds memoized entries. 0 means entries never expire.
	TTL duration `toml:"ttl"`

	// RedisAddr is the host:port of the Redis backend.
	RedisAddr string `toml:"redis_addr"`

	// RedisPrefix namespaces keys when several deployments share one Redis.
	RedisPrefix string `toml:"redis_prefix"`
}

// AssetsConfig locates bundled thumbnail images.
type AssetsConfig struct {
	// Dir is scanned for {id}.png files at startup. Empty disables
	// bundled thumbnails.
	Dir string `toml:"dir"`
}

// duration wraps time.Duration so TOML files can say "30s" or "5m".
type duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// Duration returns the wrapped time.Duration.
func (d duration) Duration() time.Duration { return time.Duration(d) }

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		Cache: CacheConfig{
			Backend:     CacheMemory,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "sketchfeed:",
		},
	}
}

// Load reads path on top of [Default]. A missing file is not an error and
// the defaults stand. Malformed TOML or an unknown cache backend is.
// SKETCHFEED_ADDR, when set, overrides the listen address last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	switch cfg.Cache.Backend {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return Config{}, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	if addr := os.Getenv("SKETCHFEED_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	return cfg, nil
}
