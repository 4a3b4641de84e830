package markdown

import (
	"regexp"
	"strings"

	"github.com/b-hayes/notes/pkg/text"
	"github.com/gosimple/slug"
)

var (
	reBoldAsterisks     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reBoldUnderscores   = regexp.MustCompile(`__(.*?)__`)
	reItalicAsterisks   = regexp.MustCompile(`\*(.*?)\*`)
	reItalicUnderscores = regexp.MustCompile(`_(.*?)_`)
	reCodeSpan          = regexp.MustCompile("`([^`].*?)`") // Important: do not match ```
)

// IsHeading returns if a given line is a Markdown heading and its level.
func IsHeading(line string) (bool, string, int) {
	if !strings.HasPrefix(line, "#") {
		return false, "", 0
	}
	for level := 6; level >= 1; level-- {
		prefix := strings.Repeat("#", level) + " "
		if strings.HasPrefix(line, prefix) {
			return true, strings.TrimPrefix(line, prefix), level
		}
	}
	return false, "", 0
}

// StripEmphasis removes Markdown emphasis characters and code span backticks.
func StripEmphasis(md string) string {
	md = reBoldAsterisks.ReplaceAllString(md, "$1")
	md = reBoldUnderscores.ReplaceAllString(md, "$1")
	md = reItalicAsterisks.ReplaceAllString(md, "$1")
	md = reItalicUnderscores.ReplaceAllString(md, "$1")
	md = reCodeSpan.ReplaceAllString(md, "$1")
	return md
}

// Slug generates a file-friendly identifier from the given values.
// Blank values are ignored and Markdown emphasis is removed.
func Slug(values ...string) string {
	var parts []string
	for _, value := range values {
		if text.IsBlank(value) {
			continue
		}
		parts = append(parts, StripEmphasis(value))
	}
	return slug.Make(strings.Join(parts, " "))
}
