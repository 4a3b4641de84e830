package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/b-hayes/notes/pkg/text"
)

// Protected fragments are replaced by an index wrapped in two private-use
// runes. Both runes are removed from the input before rendering.
const (
	placeholderOpen  = "\uE000"
	placeholderClose = "\uE001"
)

var (
	rePlaceholder = regexp.MustCompile(`\x{E000}([0-9]+)\x{E001}`)

	// A newline followed by one or more blank lines separates paragraphs.
	reParagraphBreak = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

	// Lines starting like block-level content never receive a soft break before them.
	reBlockStart = regexp.MustCompile(`^(?:[-*+]\s|\d+\.|#|>|&gt;|<|\x{E000})`)

	inputCleaner = strings.NewReplacer(
		"\r\n", "\n",
		"\r", "\n",
		placeholderOpen, "",
		placeholderClose, "",
	)
)

// Paragraphs are closed before every block element and reopened after it,
// so that blocks are never nested inside a paragraph.
var paragraphCleanups = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`(<(?:h[1-6]|ul|ol|blockquote|pre)>|<hr>)`), "</p>$1"},
	// The soft break following a block is dropped
	{regexp.MustCompile(`(</(?:h[1-6]|ul|ol|blockquote|pre)>|<hr>)(?:<br>)?`), "$1<p>"},
	{regexp.MustCompile(`<p></p>`), ""},
}

// renderer holds the state of a single Render call.
type renderer struct {
	fragments []string
}

// Render converts a note written in Markdown to HTML.
//
// The conversion is a pipeline of text passes, each one working on the full
// output of the previous one:
//
//  1. code blocks are extracted and protected from later passes
//  2. quoted lines are folded into blockquotes
//  3. list items are folded into lists
//  4. inline rules are applied (see inlineRules)
//  5. newlines become paragraph or soft breaks
//  6. angle brackets not belonging to generated tags are escaped
//  7. the result is wrapped in a paragraph split around block elements
//
// Render never fails. Blank input returns an empty string.
func Render(md string) string {
	md = inputCleaner.Replace(md)
	if text.IsBlank(md) {
		return ""
	}

	r := &renderer{}
	html := r.extractCode(md)
	html = foldBlockquotes(html)
	html = foldLists(html)
	html = r.applyRules(html)
	html = joinLines(html)
	html = EscapeStray(html)
	html = "<p>" + html + "</p>"
	html = r.restore(html)
	return cleanupParagraphs(html)
}

// protect stores a fragment and returns the placeholder standing for it.
// The fragment must already be safe HTML.
func (r *renderer) protect(fragment string) string {
	r.fragments = append(r.fragments, fragment)
	return placeholderOpen + strconv.Itoa(len(r.fragments)-1) + placeholderClose
}

// restore replaces placeholders by their fragments.
func (r *renderer) restore(html string) string {
	return replaceAllSubmatchFunc(rePlaceholder, html, func(match []string) string {
		i, err := strconv.Atoi(match[1])
		if err != nil || i >= len(r.fragments) {
			return ""
		}
		return r.fragments[i]
	})
}

// joinLines removes newlines, turning blank lines into paragraph boundaries
// and single newlines into soft breaks when appropriate.
func joinLines(html string) string {
	html = reParagraphBreak.ReplaceAllString(html, "</p><p>")

	var sb strings.Builder
	iterator := text.NewLineIteratorFromText(html)
	for iterator.HasNext() {
		line := iterator.Next()
		sb.WriteString(line.Text)
		if line.IsLast() {
			continue
		}
		if softBreak(line.Text, line.Next().Text) {
			sb.WriteString("<br>")
		}
	}
	return sb.String()
}

// softBreak reports whether a visible line break separates two adjacent lines.
//
// No break follows a line ending with a colon (ex: "Ingredients:") and no
// break precedes a blank line or a line starting like block-level content.
func softBreak(current, next string) bool {
	if strings.HasSuffix(strings.TrimSpace(current), ":") {
		return false
	}
	next = strings.TrimSpace(next)
	if next == "" {
		return false
	}
	return !reBlockStart.MatchString(next)
}

func cleanupParagraphs(html string) string {
	for _, cleanup := range paragraphCleanups {
		html = cleanup.pattern.ReplaceAllString(html, cleanup.replace)
	}
	return html
}

// replaceAllSubmatchFunc is like regexp.ReplaceAllStringFunc but passes the
// submatches of each occurrence to fn.
func replaceAllSubmatchFunc(re *regexp.Regexp, s string, fn func(match []string) string) string {
	var sb strings.Builder
	last := 0
	for _, loc := range re.FindAllStringSubmatchIndex(s, -1) {
		sb.WriteString(s[last:loc[0]])
		match := make([]string, len(loc)/2)
		for i := range match {
			if loc[2*i] >= 0 {
				match[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		sb.WriteString(fn(match))
		last = loc[1]
	}
	sb.WriteString(s[last:])
	return sb.String()
}
