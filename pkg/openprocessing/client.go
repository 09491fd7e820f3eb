package openprocessing

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/oleander/sketchfeed/pkg/cache"
)

// defaultBaseURL is the public OpenProcessing API root.
const defaultBaseURL = "https://openprocessing.org/api"

// Config configures a [Client]. The zero value works: every field has a
// usable default.
type Config struct {
	// BaseURL is the API root. Defaults to the public OpenProcessing API.
	BaseURL string

	// HTTPClient performs all requests. Defaults to a client with no
	// timeout; inject one with a Timeout for server deployments.
	HTTPClient *http.Client

	// Cache memoizes lookup results keyed by operation arguments.
	// Defaults to a process-wide in-memory cache with no expiry.
	Cache cache.Cache

	// CacheTTL bounds the lifetime of memoized entries. 0 means entries
	// live until the process exits.
	CacheTTL time.Duration

	// Logger receives warnings for degraded fetches. Defaults to
	// log.Default().
	Logger *log.Logger

	// OldCurationID and NewCurationID are the two curated collections
	// merged into the catalog. Defaults to the 2024 and 2025 showcases.
	OldCurationID string
	NewCurationID string

	// Priority is the ordered editorial pin list for the new curation.
	// Items whose VisualID appears here are placed first, in this order.
	Priority []string

	// Assets maps sketch ids to bundled thumbnail images. Thumbnails
	// resolve locally when present here, remotely otherwise.
	Assets AssetSet
}

// Client aggregates and memoizes sketch metadata. All methods are safe for
// concurrent use and never return errors; failures are logged and replaced
// with typed zero substitutes.
type Client struct {
	http     *http.Client
	cache    cache.Cache
	ttl      time.Duration
	logger   *log.Logger
	baseURL  string
	oldID    string
	newID    string
	priority []string
	assets   AssetSet
}

// New creates a Client from cfg, filling in defaults for zero fields.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewMemoryCache()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.OldCurationID == "" {
		cfg.OldCurationID = defaultOldCurationID
	}
	if cfg.NewCurationID == "" {
		cfg.NewCurationID = defaultNewCurationID
	}
	if cfg.Priority == nil {
		cfg.Priority = defaultPriority
	}
	return &Client{
		http:     cfg.HTTPClient,
		cache:    cfg.Cache,
		ttl:      cfg.CacheTTL,
		logger:   cfg.Logger,
		baseURL:  cfg.BaseURL,
		oldID:    cfg.OldCurationID,
		newID:    cfg.NewCurationID,
		priority: cfg.Priority,
		assets:   cfg.Assets,
	}
}

// cached memoizes the result of fn under key. On a hit, v is populated from
// the cache and fn is never called; otherwise fn runs (populating v) and the
// result is stored. Cache failures fall through to fn; the cache can only
// make things faster, never break a lookup.
func (c *Client) cached(ctx context.Context, key string, v any, fn func()) {
	if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		if json.Unmarshal(data, v) == nil {
			return
		}
	}
	fn()
	if data, err := json.Marshal(v); err == nil {
		_ = c.cache.Set(ctx, key, data, c.ttl)
	}
}

// getJSON performs a GET against url and decodes the JSON body into v.
// It returns false when the caller should keep its fallback value: request
// build or transport failure, or a body that does not decode. A non-OK
// status is logged with the operation name but decoding is still attempted,
// since the upstream sometimes serves a usable body alongside an error
// status. Decode failures are silent; the fallback covers them.
func (c *Client) getJSON(ctx context.Context, op, url string, v any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn("building request failed", "op", op, "url", url, "err", err)
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("fetch failed", "op", op, "url", url, "err", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("unexpected status", "op", op, "url", url, "status", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v) == nil
}
