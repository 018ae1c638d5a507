package pathutil

import "strings"

// NormalizePath replaces numeric path segments with ":id" so metric labels
// stay low-cardinality. Example: /adv/123 -> /adv/:id
func NormalizePath(path string) string {
	segments := strings.Split(path, "/")
	changed := false
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if _, err := ParseID(seg); err == nil {
			segments[i] = ":id"
			changed = true
		}
	}
	if !changed {
		return path
	}
	return strings.Join(segments, "/")
}
