package text

import (
	"path/filepath"
	"strings"
)

// IsBlank returns if a text is empty or contains only whitespace.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// SquashBlankLines replaces successive blank lines by a single empty one.
func SquashBlankLines(text string) string {
	var result []string
	previousBlank := false
	for _, line := range strings.Split(text, "\n") {
		blank := IsBlank(line)
		if blank && previousBlank {
			continue
		}
		previousBlank = blank
		if blank {
			line = ""
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// TrimExtension removes the extension from a file name or file path.
func TrimExtension(path string) string {
	path = strings.TrimSuffix(path, string(filepath.Separator))
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// EnsureExtension appends the extension unless the path already ends with it.
// The comparison ignores the case (ex: "README.MD").
func EnsureExtension(path, ext string) string {
	if strings.EqualFold(filepath.Ext(path), ext) {
		return path
	}
	return path + ext
}
