package markdown

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/b-hayes/notes/pkg/text"
)

// How many spaces to indent headings per level
const indentHeading = 2

// Inline syntax removed from plain text, in the order of inlineRules.
var inlineSyntax = []*regexp.Regexp{reStrongEm, reStrong, reEm, reDel, reImage, reLink, reInlineCode}

// ToText converts a note to plain text, keeping a similar layout.
//
// It recognizes the same syntax as Render: headings are underlined or
// indented, quotes are surrounded by double quotes, code is indented, list
// markers are normalized and inline syntax is removed.
func ToText(md string) string {
	var result []string
	var quote []string
	flushQuote := func() {
		if len(quote) > 0 {
			result = append(result, `"`+strings.Join(quote, "\n")+`"`)
			quote = nil
		}
	}

	iterator := text.NewLineIteratorFromText(inputCleaner.Replace(md))
	iterator.SkipBlankLines()
	for iterator.HasNext() {
		line := iterator.Next()

		if reFenceOpening.MatchString(line.Text) {
			flushQuote()
			// An unterminated fence runs until the end, like in Render
			for iterator.HasNext() {
				code := iterator.Next()
				if strings.HasPrefix(code.Text, "```") {
					break
				}
				result = append(result, strings.Repeat(" ", indentCode)+code.Text)
			}
			continue
		}
		if isIndentedCode(line) {
			flushQuote()
			result = append(result, line.Text)
			continue
		}
		if kind, content := classifyQuote(line.Text); kind == inQuote {
			quote = append(quote, stripInline(content))
			continue
		}

		flushQuote()
		result = append(result, textLines(line.Text)...)
	}
	flushQuote()

	return strings.TrimRight(text.SquashBlankLines(strings.Join(result, "\n")), "\n")
}

func textLines(line string) []string {
	if reRuleDashes.MatchString(line) || reRuleStars.MatchString(line) {
		return []string{"---"}
	}

	// Only the levels supported by Render
	if ok, title, level := IsHeading(line); ok && level <= 3 {
		title = stripInline(title)
		switch level {
		case 1:
			return []string{title, strings.Repeat("=", utf8.RuneCountInString(title))}
		case 2:
			return []string{title, strings.Repeat("-", utf8.RuneCountInString(title))}
		default:
			return []string{strings.Repeat(" ", (level-2)*indentHeading) + title}
		}
	}

	switch kind, content := classifyListItem(line); kind {
	case inUnorderedList:
		return []string{"- " + stripInline(content)}
	case inOrderedList:
		// Keep the number
		return []string{stripInline(strings.TrimSpace(line))}
	}

	return []string{stripInline(line)}
}

func stripInline(line string) string {
	for _, re := range inlineSyntax {
		line = re.ReplaceAllString(line, "$1")
	}
	return line
}
