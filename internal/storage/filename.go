package storage

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces an uploaded filename to a safe object key: path
// components are stripped, spaces become underscores and anything outside
// [A-Za-z0-9_.-] is dropped. Uploads keep their original (sanitized) name,
// so two uploads with the same filename overwrite each other in the bucket.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, "._")

	if name == "" {
		return "unnamed"
	}
	return name
}
