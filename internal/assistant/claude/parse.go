package claude

import "strings"

// extractJSON pulls the JSON object out of a model response. Models
// sometimes wrap the object in markdown fences or surrounding prose; the
// slice from the first '{' to the last '}' is the object itself.
func extractJSON(raw string) string {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end < start {
		return raw
	}
	return raw[start : end+1]
}
