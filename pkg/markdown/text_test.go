package markdown_test

import (
	"testing"

	"github.com/b-hayes/notes/pkg/markdown"
	"github.com/b-hayes/notes/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestToText(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected string
	}{
		{
			"empty",
			"",
			"",
		},
		{
			"raw text",
			"no special Markdown character",
			"no special Markdown character",
		},
		{
			"Windows newlines",
			"a\r\nb",
			"a\nb",
		},
		{
			"blank lines are squashed",
			"\n\n  \nfirst\n\n\n\nsecond\n\n",
			"first\n\nsecond",
		},

		// Headings
		{
			"headings",
			"# Title\n\n## Section\n\n### Sub",
			"Title\n=====\n\nSection\n-------\n\n  Sub",
		},
		{
			"heading underline counts runes",
			"# Café",
			"Café\n====",
		},
		{
			"heading with emphasis",
			"## A **bold** move",
			"A bold move\n-----------",
		},
		{
			"h4 is not a heading",
			"#### Four",
			"#### Four",
		},

		// Inline syntax
		{
			"emphasis",
			"***all*** **bold** *it* ~~del~~ `code`",
			"all bold it del code",
		},
		{
			"underscores are kept",
			"my_var_name and __init__",
			"my_var_name and __init__",
		},
		{
			"links and images",
			"[Go](https://go.dev) and ![cat](cat.png)",
			"Go and cat",
		},

		// Blocks
		{
			"quote",
			"> one\n> *two*\n\nafter",
			"\"one\ntwo\"\n\nafter",
		},
		{
			"escaped quote marker",
			"&gt; escaped",
			"\"escaped\"",
		},
		{
			"lists",
			"* a\n+ b\n  - **c**\n1. one\n2. two",
			"- a\n- b\n- c\n1. one\n2. two",
		},
		{
			"rules",
			"a\n\n---\n\n***\n\nb",
			"a\n\n---\n\n---\n\nb",
		},
		{
			"fenced code",
			text.UnescapeTestContent("Run:\n‛‛‛go\nfmt.Println(\"*hi*\")\n‛‛‛\ndone"),
			"Run:\n    fmt.Println(\"*hi*\")\ndone",
		},
		{
			"unterminated fence",
			text.UnescapeTestContent("‛‛‛\ncode *x*\nmore"),
			"    code *x*\n    more",
		},
		{
			"indented code",
			"text\n\n    x = *y*",
			"text\n\n    x = *y*",
		},
		{
			"indented list item",
			"- a\n    - b",
			"- a\n- b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := markdown.ToText(tt.input)
			assert.Equal(t, tt.expected, actual)
		})
	}
}
