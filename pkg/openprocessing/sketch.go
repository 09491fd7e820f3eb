package openprocessing

import (
	"context"
	"math"
	"regexp"
	"strconv"
)

// createCanvasRE matches a p5.js canvas-creation call with two positional
// numeric-or-identifier arguments and an optional renderer argument. This is
// best-effort text scanning, not parsing: sketch source is arbitrary user
// code and the first plausible match wins.
var createCanvasRE = regexp.MustCompile(`createCanvas\(\s*([\w.]+)\s*,\s*([\w.]+)\s*(?:,\s*[\w.]+\s*)?\)`)

// Identifiers that signal window-sized canvases. Sketches using them size
// themselves at runtime, so no static dimensions exist.
const (
	windowWidthIdent  = "windowWidth"
	windowHeightIdent = "windowHeight"
)

// Sketch resolves a single sketch's metadata. Ids present in the merged
// catalog are answered from it without a network call (with an empty
// License); anything else is fetched from the detail endpoint. When that
// fetch fails, the result is a fully-populated record whose VisualID is the
// requested id and every other field is empty.
//
// Results are memoized by id.
func (c *Client) Sketch(ctx context.Context, id string) SketchDetail {
	var detail SketchDetail
	c.cached(ctx, "sketch:"+id, &detail, func() {
		detail = c.lookupSketch(ctx, id)
	})
	return detail
}

func (c *Client) lookupSketch(ctx context.Context, id string) SketchDetail {
	for _, item := range c.CurationSketches(ctx, 0) {
		if item.VisualID == id {
			return SketchDetail{
				VisualID:     item.VisualID,
				Title:        item.Title,
				Description:  item.Description,
				Instructions: item.Instructions,
				License:      "",
				UserID:       item.UserID,
				SubmittedOn:  item.SubmittedOn,
				CreatedOn:    item.CreatedOn,
				Mode:         item.Mode,
			}
		}
	}

	var raw rawSketchDetail
	if !c.getJSON(ctx, "sketch "+id, c.baseURL+"/sketch/"+id, &raw) {
		return SketchDetail{VisualID: id}
	}
	return SketchDetail{
		VisualID:     string(raw.VisualID),
		Title:        raw.Title,
		Description:  raw.Description,
		Instructions: raw.Instructions,
		License:      raw.License,
		UserID:       string(raw.UserID),
		SubmittedOn:  raw.SubmittedOn,
		CreatedOn:    raw.CreatedOn,
		Mode:         raw.Mode,
	}
}

// SketchSize infers a sketch's canvas dimensions from its source code.
// Only p5.js sketches are inspected; every other mode reports unknown
// dimensions without fetching source. Tabs are scanned in order and the
// first createCanvas match decides: window-sized sentinels or arguments
// that don't parse to non-zero finite numbers both mean unknown.
//
// Results are memoized by id.
func (c *Client) SketchSize(ctx context.Context, id string) Dimensions {
	var dims Dimensions
	c.cached(ctx, "size:"+id, &dims, func() {
		dims = c.inferSize(ctx, id)
	})
	return dims
}

func (c *Client) inferSize(ctx context.Context, id string) Dimensions {
	detail := c.Sketch(ctx, id)
	if detail.Mode != ModeP5JS {
		return Dimensions{}
	}

	var tabs []codeTab
	if !c.getJSON(ctx, "code "+id, c.baseURL+"/sketch/"+id+"/code", &tabs) {
		tabs = nil
	}

	for _, tab := range tabs {
		if tab.Code == "" {
			continue
		}
		m := createCanvasRE.FindStringSubmatch(tab.Code)
		if m == nil {
			continue
		}
		if m[1] == windowWidthIdent && m[2] == windowHeightIdent {
			return Dimensions{}
		}
		w, errW := strconv.ParseFloat(m[1], 64)
		h, errH := strconv.ParseFloat(m[2], 64)
		if errW == nil && errH == nil && truthy(w) && truthy(h) {
			return Dimensions{Width: &w, Height: &h}
		}
		// First match wins even when unusable; later tabs don't override.
		return Dimensions{}
	}
	return Dimensions{}
}

func truthy(f float64) bool {
	return f != 0 && !math.IsNaN(f)
}
