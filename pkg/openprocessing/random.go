package openprocessing

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
)

// DefaultRandomCount is how many sketches RandomCurationSketches picks when
// the caller asks for zero or fewer.
const DefaultRandomCount = 4

// RandomCurationSketches returns n distinct catalog entries chosen uniformly
// at random without replacement. Asking for at least the whole catalog
// returns the whole catalog.
//
// The sample is memoized by n: repeated calls with the same n return the
// same picks for the life of the cache entry. Use a [cache.NullCache]-backed
// client for a fresh sample per call.
func (c *Client) RandomCurationSketches(ctx context.Context, n int) []CurationItem {
	if n <= 0 {
		n = DefaultRandomCount
	}
	var picks []CurationItem
	c.cached(ctx, fmt.Sprintf("random:%d", n), &picks, func() {
		picks = c.sampleCatalog(ctx, n)
	})
	return picks
}

// sampleCatalog draws n distinct entries by rejection sampling. Attempts
// are capped at 10×n so a pathological random stream cannot loop forever;
// hitting the cap shortens the result instead.
func (c *Client) sampleCatalog(ctx context.Context, n int) []CurationItem {
	catalog := c.CurationSketches(ctx, 0)
	if n >= len(catalog) {
		return slices.Clone(catalog)
	}

	picks := make([]CurationItem, 0, n)
	seen := make(map[int]bool, n)
	for attempts := 0; len(picks) < n && attempts < 10*n; attempts++ {
		i := rand.Intn(len(catalog))
		if seen[i] {
			continue
		}
		seen[i] = true
		picks = append(picks, catalog[i])
	}
	return picks
}
