package markdown

import (
	"regexp"
	"strings"
)

// GeneratedTags lists the tag names Render may produce.
var GeneratedTags = []string{
	"h1", "h2", "h3", "h4", "h5", "h6",
	"p", "br",
	"strong", "em", "del",
	"code", "pre",
	"ul", "ol", "li",
	"blockquote",
	"a", "img", "hr",
}

var reGeneratedTag = regexp.MustCompile(`^</?(?:` + strings.Join(GeneratedTags, "|") + `)(?:\s[^<>]*)?/?>`)

// EscapeStray escapes every < or > which is not part of a tag among GeneratedTags.
// The check is lexical: tags are recognized at the position of each bracket,
// without verifying they are balanced.
func EscapeStray(html string) string {
	var sb strings.Builder
	sb.Grow(len(html))
	for i := 0; i < len(html); {
		switch html[i] {
		case '<':
			if tag := reGeneratedTag.FindString(html[i:]); tag != "" {
				sb.WriteString(tag)
				i += len(tag)
				continue
			}
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		default:
			sb.WriteByte(html[i])
		}
		i++
	}
	return sb.String()
}
