// Package assets discovers bundled thumbnail images at startup.
//
// Thumbnails ship with the site as images/{id}.png. Rather than globbing at
// lookup time, the directory is scanned once and turned into an explicit
// id-to-asset mapping that gets injected into the catalog client.
package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/oleander/sketchfeed/pkg/openprocessing"
)

// Load scans dir for {id}.png files and returns the asset mapping.
// A missing or unreadable directory yields an empty set, not an error:
// bundled thumbnails are an optimization and the remote fallback always
// works. Non-PNG files and subdirectories are ignored.
func Load(dir string) openprocessing.AssetSet {
	set := make(openprocessing.AssetSet)
	if dir == "" {
		return set
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return set
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		id, ok := strings.CutSuffix(name, ".png")
		if !ok || id == "" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		set[id] = openprocessing.Asset{
			ID:   id,
			Path: filepath.Join(dir, name),
			Size: info.Size(),
		}
	}
	return set
}
