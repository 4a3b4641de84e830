package markdown

import (
	"regexp"
	"strings"

	"github.com/b-hayes/notes/pkg/text"
)

// How many leading spaces make a line of code
const indentCode = 4

var (
	reFenceOpening  = regexp.MustCompile("^```\\s*([\\w+#.-]*)\\s*$")
	reUnorderedItem = regexp.MustCompile(`^[-*+] `)
	reOrderedItem   = regexp.MustCompile(`^\d+\. (.*)$`)
)

var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Accepted blockquote markers, the escaped form first.
var quoteMarkers = []string{"&gt;", ">"}

/*
 * Code blocks
 */

// extractCode replaces fenced code blocks and indented lines by protected fragments.
//
// A fence left open until the end of the document turns the remaining lines
// into code, the same way the block looks while it is being typed.
func (r *renderer) extractCode(md string) string {
	var result []string
	var code []string
	fenced := false
	language := ""

	iterator := text.NewLineIteratorFromText(md)
	for iterator.HasNext() {
		line := iterator.Next()

		if fenced {
			if strings.HasPrefix(line.Text, "```") {
				result = append(result, r.protect(codeBlock(language, code)))
				fenced = false
				continue
			}
			code = append(code, line.Text)
			continue
		}

		if match := reFenceOpening.FindStringSubmatch(line.Text); match != nil {
			fenced = true
			language = match[1]
			code = nil
			continue
		}

		if isIndentedCode(line) {
			result = append(result, r.protect(codeBlock("", []string{line.Text[indentCode:]})))
			continue
		}

		result = append(result, line.Text)
	}

	if fenced {
		result = append(result, r.protect(codeBlock(language, code)))
	}

	return strings.Join(result, "\n")
}

// isIndentedCode reports whether a line is indented code.
// A list item directly following another list item is never code, so
// indented items stay in the list.
func isIndentedCode(line text.Line) bool {
	if !strings.HasPrefix(line.Text, strings.Repeat(" ", indentCode)) || line.IsBlank() {
		return false
	}
	if isListItem(line.Text) && isListItem(line.Prev().Text) {
		return false
	}
	return true
}

func codeBlock(language string, lines []string) string {
	var sb strings.Builder
	sb.WriteString("<pre><code")
	if language != "" {
		sb.WriteString(` class="language-`)
		sb.WriteString(language)
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(angleEscaper.Replace(strings.Trim(strings.Join(lines, "\n"), "\n")))
	sb.WriteString("</code></pre>")
	return sb.String()
}

/*
 * Folding
 */

type blockKind int

const (
	idle blockKind = iota
	inQuote
	inUnorderedList
	inOrderedList
)

// blockState is the block being accumulated while folding lines.
type blockState struct {
	kind  blockKind
	items []string
}

// step feeds one classified line to the state. It returns the next state and
// the lines to emit, if any.
func (s blockState) step(kind blockKind, line, content string) (blockState, []string) {
	var emitted []string
	if kind != s.kind {
		emitted = s.flush()
		s = blockState{}
	}
	if kind == idle {
		return s, append(emitted, line)
	}
	return blockState{kind: kind, items: append(s.items, content)}, emitted
}

// flush returns the accumulated block as HTML, or nothing when idle.
func (s blockState) flush() []string {
	switch s.kind {
	case inQuote:
		return []string{"<blockquote>" + strings.Join(s.items, "<br>") + "</blockquote>"}
	case inUnorderedList:
		return []string{"<ul>" + listItems(s.items) + "</ul>"}
	case inOrderedList:
		return []string{"<ol>" + listItems(s.items) + "</ol>"}
	}
	return nil
}

func listItems(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("<li>")
		sb.WriteString(item)
		sb.WriteString("</li>")
	}
	return sb.String()
}

// classifier returns the kind of block a line belongs to with the content
// to keep, or idle for lines outside any block.
type classifier func(line string) (kind blockKind, content string)

// fold groups successive lines of the same kind into a single line of HTML.
func fold(md string, classify classifier) string {
	var result []string
	state := blockState{}
	for _, line := range strings.Split(md, "\n") {
		kind, content := classify(line)
		var emitted []string
		state, emitted = state.step(kind, line, content)
		result = append(result, emitted...)
	}
	result = append(result, state.flush()...)
	return strings.Join(result, "\n")
}

func foldBlockquotes(md string) string {
	return fold(md, classifyQuote)
}

func foldLists(md string) string {
	return fold(md, classifyListItem)
}

// classifyQuote recognizes a single level of quoting.
func classifyQuote(line string) (blockKind, string) {
	trimmed := strings.TrimSpace(line)
	for _, marker := range quoteMarkers {
		if trimmed == marker {
			return inQuote, ""
		}
		if strings.HasPrefix(trimmed, marker+" ") {
			return inQuote, trimmed[len(marker)+1:]
		}
	}
	return idle, ""
}

// classifyListItem ignores the indentation. Nested lists are rendered flat.
func classifyListItem(line string) (blockKind, string) {
	trimmed := strings.TrimSpace(line)
	if reUnorderedItem.MatchString(trimmed) {
		return inUnorderedList, trimmed[2:]
	}
	if match := reOrderedItem.FindStringSubmatch(trimmed); match != nil {
		return inOrderedList, match[1]
	}
	return idle, ""
}

func isListItem(line string) bool {
	kind, _ := classifyListItem(line)
	return kind != idle
}
