package openprocessing

import "encoding/json"

// Curation tags attached during the merge. The upstream API never sends
// these; they mark which editorial collection an item came from.
const (
	curationTagOld = "2024"
	curationTagNew = "2025"
)

// ModeP5JS is the renderer mode for sketches whose canvas dimensions can be
// inferred from source code. Sketches in any other mode report unknown
// dimensions without a source fetch.
const ModeP5JS = "p5js"

// CurationItem is one entry of the merged curation catalog.
//
// VisualID and UserID are always strings, regardless of how the upstream
// JSON typed them. Curation is "2024" or "2025" for merged items and empty
// on raw API data.
type CurationItem struct {
	VisualID     string `json:"visualID"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	Mode         string `json:"mode"`
	CreatedOn    string `json:"createdOn"`
	UserID       string `json:"userID"`
	SubmittedOn  string `json:"submittedOn"`
	Fullname     string `json:"fullname"`
	Curation     string `json:"curation,omitempty"`
}

// SketchDetail is the metadata for a single sketch. Items resolved from the
// cached catalog carry an empty License; items fetched directly carry
// whatever the API reported.
type SketchDetail struct {
	VisualID     string `json:"visualID"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	License      string `json:"license"`
	UserID       string `json:"userID"`
	SubmittedOn  string `json:"submittedOn"`
	CreatedOn    string `json:"createdOn"`
	Mode         string `json:"mode"`
}

// Dimensions holds a sketch's inferred canvas size. Width and Height are
// both nil whenever inference fails or the sketch sizes itself to the
// window at runtime.
type Dimensions struct {
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// FlexID decodes identifier fields the upstream serves inconsistently as
// JSON strings or numbers. Null and anything unparseable decode to "" so
// that malformed elements degrade instead of failing the surrounding array.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*f = ""
			return nil
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*f = ""
		return nil
	}
	*f = FlexID(n.String())
	return nil
}

// rawCurationItem is the wire shape of a curation list entry. Only the
// identifier fields need coercion; everything else is passed through.
type rawCurationItem struct {
	VisualID     FlexID `json:"visualID"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	Mode         string `json:"mode"`
	CreatedOn    string `json:"createdOn"`
	UserID       FlexID `json:"userID"`
	SubmittedOn  string `json:"submittedOn"`
	Fullname     string `json:"fullname"`
}

// rawSketchDetail is the wire shape of the sketch detail endpoint.
type rawSketchDetail struct {
	VisualID     FlexID `json:"visualID"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	License      string `json:"license"`
	UserID       FlexID `json:"userID"`
	SubmittedOn  string `json:"submittedOn"`
	CreatedOn    string `json:"createdOn"`
	Mode         string `json:"mode"`
}

// codeTab is one entry of the sketch source listing. Tabs without code are
// skipped during dimension inference.
type codeTab struct {
	Code string `json:"code"`
}
