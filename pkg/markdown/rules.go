package markdown

import (
	"regexp"
	"strings"
)

// rule is a text rewrite applied to the whole document.
// When rewrite is set, it is called with the submatches of every occurrence
// instead of expanding replace.
type rule struct {
	name    string
	pattern *regexp.Regexp
	replace string
	rewrite func(r *renderer, match []string) string
}

var (
	reStrongEm   = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	reStrong     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reEm         = regexp.MustCompile(`\*([^*\n]+)\*`)
	reDel        = regexp.MustCompile(`~~(.+?)~~`)
	reInlineCode = regexp.MustCompile("`([^`\n]+)`")
	reLink       = regexp.MustCompile(`!?\[([^\]\n]+)\]\(([^)\n]+)\)`)
	reImage      = regexp.MustCompile(`!\[([^\]\n]*)\]\(([^)\n]+)\)`)
	reRuleDashes = regexp.MustCompile(`(?m)^---$`)
	reRuleStars  = regexp.MustCompile(`(?m)^\*\*\*$`)
)

// inlineRules are applied in order, each one on the output of the previous one.
//
// The order matters:
//   - ***text*** must be rewritten before ** and *, which would otherwise leave stray asterisks.
//   - Code spans are protected before links so that link syntax inside code is kept as is.
//   - Links skip the image syntax so that images are rewritten by the next rule.
//   - A *** line must survive the emphasis rules to become a rule.
var inlineRules = []rule{
	// Headings
	{name: "h3", pattern: regexp.MustCompile(`(?m)^### (.*)$`), replace: "<h3>$1</h3>"},
	{name: "h2", pattern: regexp.MustCompile(`(?m)^## (.*)$`), replace: "<h2>$1</h2>"},
	{name: "h1", pattern: regexp.MustCompile(`(?m)^# (.*)$`), replace: "<h1>$1</h1>"},

	// Emphasis
	{name: "strong-em", pattern: reStrongEm, replace: "<strong><em>$1</em></strong>"},
	{name: "strong", pattern: reStrong, replace: "<strong>$1</strong>"},
	{name: "em", pattern: reEm, replace: "<em>$1</em>"},
	{name: "del", pattern: reDel, replace: "<del>$1</del>"},

	{name: "code", pattern: reInlineCode, rewrite: rewriteCodeSpan},
	{name: "link", pattern: reLink, rewrite: rewriteLink},
	{name: "image", pattern: reImage, rewrite: rewriteImage},

	// Horizontal rules
	{name: "hr", pattern: reRuleDashes, replace: "<hr>"},
	{name: "hr", pattern: reRuleStars, replace: "<hr>"},
}

var attributeEscaper = strings.NewReplacer(`"`, "&quot;", "<", "&lt;", ">", "&gt;")

func (r *renderer) applyRules(md string) string {
	for _, rl := range inlineRules {
		md = rl.apply(r, md)
	}
	return md
}

func (rl rule) apply(r *renderer, md string) string {
	if rl.rewrite == nil {
		return rl.pattern.ReplaceAllString(md, rl.replace)
	}
	return replaceAllSubmatchFunc(rl.pattern, md, func(match []string) string {
		return rl.rewrite(r, match)
	})
}

func rewriteCodeSpan(r *renderer, match []string) string {
	return r.protect("<code>" + EscapeStray(match[1]) + "</code>")
}

func rewriteLink(_ *renderer, match []string) string {
	if strings.HasPrefix(match[0], "!") {
		return match[0]
	}
	return `<a href="` + attributeEscaper.Replace(match[2]) + `" target="_blank">` + match[1] + `</a>`
}

func rewriteImage(_ *renderer, match []string) string {
	return `<img src="` + attributeEscaper.Replace(match[2]) + `" alt="` + attributeEscaper.Replace(match[1]) + `" />`
}
