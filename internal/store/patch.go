package store

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Patch is a set of top level fields to write into a record's data.
type Patch map[string]any

// PatchOf converts a struct into a Patch through its JSON form, so fields
// tagged omitempty and left nil are not part of the patch.
func PatchOf(v any) (Patch, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal patch: %w", err)
	}
	p := Patch{}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("patch must be a JSON object: %w", err)
	}
	return p, nil
}

// merge overlays patch on top of base and returns the encoded result.
func merge(base json.RawMessage, defaults, patch Patch) (json.RawMessage, error) {
	fields := Patch{}
	if len(base) > 0 {
		if err := json.Unmarshal(base, &fields); err != nil {
			return nil, fmt.Errorf("decode stored data: %w", err)
		}
	} else {
		maps.Copy(fields, defaults)
	}
	maps.Copy(fields, patch)
	return json.Marshal(fields)
}
