package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/oleander/sketchfeed/pkg/cache"
	"github.com/oleander/sketchfeed/pkg/openprocessing"
)

// newTestServer wires the full stack against a fake upstream API.
func newTestServer(t *testing.T, upstream http.HandlerFunc) *httptest.Server {
	t.Helper()

	api := httptest.NewServer(upstream)
	t.Cleanup(api.Close)

	logger := log.New(io.Discard)
	client := openprocessing.New(openprocessing.Config{
		BaseURL:       api.URL,
		HTTPClient:    api.Client(),
		Cache:         cache.NewMemoryCache(),
		Logger:        logger,
		OldCurationID: "1001",
		NewCurationID: "2002",
		Priority:      []string{"10"},
		Assets: openprocessing.AssetSet{
			"55": {ID: "55", Path: "images/55.png", Size: 100},
		},
	})

	srv := httptest.NewServer(New(client, logger).Router())
	t.Cleanup(srv.Close)
	return srv
}

// happyUpstream serves a small fixed catalog.
func happyUpstream(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/curation/1001/sketches":
		io.WriteString(w, `[{"visualID": "500", "title": "old", "mode": "p5js"}]`)
	case "/curation/2002/sketches":
		io.WriteString(w, `[{"visualID": "10", "title": "pinned", "mode": "p5js"}]`)
	case "/sketch/500/code":
		io.WriteString(w, `[{"code": "createCanvas(640, 360);"}]`)
	default:
		http.NotFound(w, r)
	}
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestCurationEndpoint(t *testing.T) {
	srv := newTestServer(t, happyUpstream)

	var items []openprocessing.CurationItem
	resp := getJSON(t, srv.URL+"/api/curation", &items)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].VisualID != "10" || items[0].Curation != "2025" {
		t.Errorf("first item should be the pinned pick, got %+v", items[0])
	}
	if items[1].VisualID != "500" || items[1].Curation != "2024" {
		t.Errorf("second item should be from the old collection, got %+v", items[1])
	}
}

func TestSketchEndpoint(t *testing.T) {
	srv := newTestServer(t, happyUpstream)

	var detail openprocessing.SketchDetail
	getJSON(t, srv.URL+"/api/sketch/500", &detail)
	if detail.VisualID != "500" || detail.Title != "old" {
		t.Errorf("detail = %+v", detail)
	}
}

func TestSketchSizeEndpoint(t *testing.T) {
	srv := newTestServer(t, happyUpstream)

	var body struct {
		Width     *float64 `json:"width"`
		Height    *float64 `json:"height"`
		SketchURL string   `json:"sketchURL"`
		EmbedURL  string   `json:"embedURL"`
	}
	getJSON(t, srv.URL+"/api/sketch/500/size", &body)
	if body.Width == nil || *body.Width != 640 {
		t.Errorf("width = %v, want 640", body.Width)
	}
	if body.Height == nil || *body.Height != 360 {
		t.Errorf("height = %v, want 360", body.Height)
	}
	if body.SketchURL != openprocessing.SketchURL("500") {
		t.Errorf("sketchURL = %q", body.SketchURL)
	}
	if body.EmbedURL != openprocessing.EmbedURL("500") {
		t.Errorf("embedURL = %q", body.EmbedURL)
	}
}

func TestThumbnailEndpoint(t *testing.T) {
	srv := newTestServer(t, happyUpstream)

	var local openprocessing.Thumbnail
	getJSON(t, srv.URL+"/api/sketch/55/thumbnail", &local)
	if local.Asset == nil || local.Asset.Path != "images/55.png" {
		t.Errorf("bundled thumbnail = %+v, want local asset", local)
	}

	var remote openprocessing.Thumbnail
	getJSON(t, srv.URL+"/api/sketch/999/thumbnail", &remote)
	if remote.Asset != nil || remote.URL != openprocessing.ThumbnailURL("999") {
		t.Errorf("remote thumbnail = %+v", remote)
	}
}

func TestRandomEndpoint(t *testing.T) {
	srv := newTestServer(t, happyUpstream)

	var items []openprocessing.CurationItem
	getJSON(t, srv.URL+"/api/curation/random?count=1", &items)
	if len(items) != 1 {
		t.Errorf("got %d items, want 1", len(items))
	}
}

func TestEndpointsDegradeOnUpstreamFailure(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	var items []openprocessing.CurationItem
	resp := getJSON(t, srv.URL+"/api/curation", &items)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("catalog status = %d, want 200 even when upstream is down", resp.StatusCode)
	}
	if len(items) != 0 {
		t.Errorf("catalog should be empty, got %d", len(items))
	}

	var detail openprocessing.SketchDetail
	resp = getJSON(t, srv.URL+"/api/sketch/123", &detail)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("sketch status = %d, want 200", resp.StatusCode)
	}
	if detail.VisualID != "123" {
		t.Errorf("fallback VisualID = %q, want requested id", detail.VisualID)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, happyUpstream)

	resp := getJSON(t, srv.URL+"/api/health", nil)
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("response should carry X-Request-ID")
	}

	// A caller-supplied id is echoed back.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if got := resp2.Header.Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want echoed %q", got, "abc-123")
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, happyUpstream)

	var body map[string]string
	resp := getJSON(t, srv.URL+"/api/health", &body)
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Errorf("health = %d %v", resp.StatusCode, body)
	}
}
