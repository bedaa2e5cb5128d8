package core

import (
	"regexp"
	"strings"
)

// Characters that are invalid in Windows filenames, plus line breaks. Runs
// collapse to a single underscore.
var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\n\r]+`)

// SanitizeFilename makes a string safe for use as a filename.
func SanitizeFilename(name string) string {
	return strings.TrimSpace(invalidFilenameChars.ReplaceAllString(name, "_"))
}
