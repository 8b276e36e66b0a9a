// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package article

import "encoding/json"

// # Gallery Merge

/*
MergeGallery combines the editor's kept gallery entries with freshly
uploaded file paths into the serialized column value.

Description: The admin SPA sends existing_gallery_images as a JSON array
of the paths the editor chose to keep (already reordered or pruned client
side). The merge appends new uploads after the kept entries, preserving
both orders. The result is always well-formed JSON array text — "[]" when
nothing remains.

Parameters:
  - keptRaw: string (The raw existing_gallery_images form value)
  - uploaded: []string (Public paths of gallery files stored this request)

Returns:
  - string: JSON array text for the gallery_images column
*/
func MergeGallery(keptRaw string, uploaded []string) string {
	merged := append(parseKeptGallery(keptRaw), uploaded...)

	// merged is never nil, so this cannot produce "null".
	serialized, err := json.Marshal(merged)
	if err != nil {
		return "[]"
	}
	return string(serialized)
}

// parseKeptGallery decodes the kept-entries form value leniently.
//
// A missing, empty, or unparsable value means "no kept entries", never an
// error: legacy rows hold hand-edited garbage in this column and an update
// must not fail because of it.
func parseKeptGallery(raw string) []string {
	kept := []string{}
	if raw == "" {
		return kept
	}

	if err := json.Unmarshal([]byte(raw), &kept); err != nil {
		return []string{}
	}
	if kept == nil {
		// The literal "null" decodes without error.
		return []string{}
	}
	return kept
}
