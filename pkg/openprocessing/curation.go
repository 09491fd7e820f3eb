package openprocessing

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// The two curated collections merged into the catalog.
const (
	defaultOldCurationID = "78544"
	defaultNewCurationID = "87649"
)

// defaultPriority pins the editor's picks from the new curation ahead of
// whatever order the API returns. Maintained by hand; order matters.
var defaultPriority = []string{
	"2211928",
	"2261563",
	"2350179",
	"2383107",
	"2428509",
	"2431623",
	"2446354",
	"2459099",
	"2463151",
	"2470287",
}

// CurationSketches returns the merged curation catalog: pinned items from
// the new collection first, in pin-list order and tagged "2025", followed by
// every item of the old collection tagged "2024".
//
// limit bounds the upstream fetch size per collection; limit <= 0 fetches
// each collection unbounded. The merged result can exceed limit. A
// collection that fails to fetch contributes nothing; the merge continues
// with whatever arrived.
//
// Results are memoized by limit.
func (c *Client) CurationSketches(ctx context.Context, limit int) []CurationItem {
	var items []CurationItem
	c.cached(ctx, fmt.Sprintf("curation:%d", limit), &items, func() {
		items = c.mergeCurations(ctx, limit)
	})
	return items
}

// mergeCurations fetches both collections concurrently and joins them.
// The two fetches are independent; issuing them together costs nothing and
// halves the cold-catalog latency.
func (c *Client) mergeCurations(ctx context.Context, limit int) []CurationItem {
	var oldItems, newItems []CurationItem

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		oldItems = c.fetchCurationSketches(ctx, c.oldID, limit)
	}()
	go func() {
		defer wg.Done()
		newItems = c.fetchCurationSketches(ctx, c.newID, limit)
	}()
	wg.Wait()

	merged := make([]CurationItem, 0, len(c.priority)+len(oldItems))
	for _, id := range c.priority {
		for _, item := range newItems {
			if item.VisualID == id {
				item.Curation = curationTagNew
				merged = append(merged, item)
				break
			}
		}
	}
	for _, item := range oldItems {
		item.Curation = curationTagOld
		merged = append(merged, item)
	}
	return merged
}

// fetchCurationSketches fetches and normalizes one collection. Any failure
// yields an empty slice.
func (c *Client) fetchCurationSketches(ctx context.Context, curationID string, limit int) []CurationItem {
	url := c.baseURL + "/curation/" + curationID + "/sketches"
	if limit > 0 {
		url += "?limit=" + strconv.Itoa(limit)
	}

	var raw []rawCurationItem
	if !c.getJSON(ctx, "curation "+curationID, url, &raw) {
		raw = nil
	}
	return normalizeCurationItems(raw)
}

// normalizeCurationItems converts wire entries to catalog items with
// identifier fields forced to strings. A nil input (failed or non-array
// payload) normalizes to an empty slice.
func normalizeCurationItems(raw []rawCurationItem) []CurationItem {
	items := make([]CurationItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, CurationItem{
			VisualID:     string(r.VisualID),
			Title:        r.Title,
			Description:  r.Description,
			Instructions: r.Instructions,
			Mode:         r.Mode,
			CreatedOn:    r.CreatedOn,
			UserID:       string(r.UserID),
			SubmittedOn:  r.SubmittedOn,
			Fullname:     r.Fullname,
		})
	}
	return items
}
