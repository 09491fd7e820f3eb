// Package openprocessing aggregates sketch metadata from the OpenProcessing
// public API for display on a content website.
//
// The package exposes one [Client] with a handful of lookup operations:
// the merged curation catalog, single-sketch detail, inferred canvas
// dimensions, random catalog samples, and URL/thumbnail helpers. Every
// lookup is memoized through an injected [cache.Cache] keyed by its
// arguments, and every failure degrades to a logged default value; no
// operation ever returns an error to its caller. The metadata is display
// candy, not business state; a blank card beats a crashed page.
//
// The upstream API is consumed read-only:
//
//	GET {base}/curation/{id}/sketches?limit={n}
//	GET {base}/sketch/{id}
//	GET {base}/sketch/{id}/code
//
// No shape validation is performed beyond best-effort field coercion;
// identifier fields arrive as strings or numbers and are always normalized
// to strings.
package openprocessing
