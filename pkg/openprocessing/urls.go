package openprocessing

const (
	sketchPageBase = "https://openprocessing.org/sketch/"
	thumbnailBase  = "https://openprocessing-usercontent.s3.amazonaws.com/thumbnails/"
)

// Asset is a bundled thumbnail image resolved at startup, keyed by sketch id.
type Asset struct {
	ID   string `json:"id"`   // Sketch id the image belongs to
	Path string `json:"path"` // Path of the bundled file
	Size int64  `json:"size"` // File size in bytes
}

// AssetSet is an explicit mapping from sketch id to bundled thumbnail.
// It is built outside this package (by scanning an images directory) and
// injected via [Config.Assets].
type AssetSet map[string]Asset

// Thumbnail is the result of thumbnail resolution. Exactly one field is
// populated: Asset when the image is bundled locally, URL otherwise.
type Thumbnail struct {
	Asset *Asset `json:"asset,omitempty"`
	URL   string `json:"url,omitempty"`
}

// SketchURL returns the sketch's page on OpenProcessing.
func SketchURL(id string) string {
	return sketchPageBase + id
}

// EmbedURL returns the embeddable iframe URL for a sketch, with fullscreen
// enabled and the instructions overlay suppressed.
func EmbedURL(id string) string {
	return sketchPageBase + id + "/embed/?plusEmbedFullscreen=true&plusEmbedInstructions=false"
}

// ThumbnailURL returns the remote thumbnail image URL for a sketch.
func ThumbnailURL(id string) string {
	return thumbnailBase + "visualThumbnail" + id + "@2x.jpg"
}

// ResolveThumbnail returns the bundled asset for id when one exists in the
// injected asset set, and the remote thumbnail URL otherwise.
func (c *Client) ResolveThumbnail(id string) Thumbnail {
	if asset, ok := c.assets[id]; ok {
		return Thumbnail{Asset: &asset}
	}
	return Thumbnail{URL: ThumbnailURL(id)}
}
