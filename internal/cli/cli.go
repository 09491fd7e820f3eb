// Package cli implements the sketchfeed command-line interface.
//
// This package provides commands for serving the catalog API, inspecting
// the merged curation catalog, and browsing sketches interactively. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - serve: Run the catalog JSON API for the content website
//   - catalog: Print the merged curation catalog
//   - sketch: Show one sketch's metadata, dimensions, and URLs
//   - random: Pick random sketches from the catalog
//   - browse: Interactively browse the catalog
package cli

import (
	"context"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/oleander/sketchfeed/internal/assets"
	"github.com/oleander/sketchfeed/internal/config"
	"github.com/oleander/sketchfeed/pkg/buildinfo"
	"github.com/oleander/sketchfeed/pkg/cache"
	"github.com/oleander/sketchfeed/pkg/openprocessing"
)

// appName is the application name used for display.
const appName = "sketchfeed"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sketchfeed serves curated OpenProcessing sketch metadata",
		Long:         `Sketchfeed fetches, normalizes, and caches sketch metadata from the OpenProcessing API and serves it as JSON for a content website.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")

	// Register all subcommands
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.sketchCommand())
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.browseCommand())

	return root
}

// loadConfig reads the configured TOML file (or defaults).
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// newClient builds a catalog client from cfg. One-shot commands pass
// fresh=true to skip memoization; the process exits before a memo entry
// would ever be reused.
func (c *CLI) newClient(ctx context.Context, cfg config.Config, fresh bool) (*openprocessing.Client, error) {
	backend, err := c.newCache(ctx, cfg, fresh)
	if err != nil {
		return nil, err
	}

	return openprocessing.New(openprocessing.Config{
		BaseURL:       cfg.API.BaseURL,
		HTTPClient:    &http.Client{Timeout: cfg.API.Timeout.Duration()},
		Cache:         backend,
		CacheTTL:      cfg.Cache.TTL.Duration(),
		Logger:        c.Logger,
		OldCurationID: cfg.API.OldCurationID,
		NewCurationID: cfg.API.NewCurationID,
		Priority:      cfg.API.Priority,
		Assets:        assets.Load(cfg.Assets.Dir),
	}), nil
}

func (c *CLI) newCache(ctx context.Context, cfg config.Config, fresh bool) (cache.Cache, error) {
	if fresh || cfg.Cache.Backend == config.CacheNone {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.Backend == config.CacheRedis {
		return cache.NewRedisCache(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPrefix)
	}
	return cache.NewMemoryCache(), nil
}
