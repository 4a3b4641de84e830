package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockState(t *testing.T) {
	state := blockState{}

	state, emitted := state.step(inQuote, "> a", "a")
	assert.Empty(t, emitted)
	assert.Equal(t, inQuote, state.kind)

	state, emitted = state.step(inQuote, "> b", "b")
	assert.Empty(t, emitted)
	assert.Equal(t, []string{"a", "b"}, state.items)

	// A different kind flushes the current block
	state, emitted = state.step(inUnorderedList, "- c", "c")
	assert.Equal(t, []string{"<blockquote>a<br>b</blockquote>"}, emitted)
	assert.Equal(t, inUnorderedList, state.kind)
	assert.Equal(t, []string{"c"}, state.items)

	// A line outside any block flushes the block and is emitted after it
	state, emitted = state.step(idle, "text", "")
	assert.Equal(t, []string{"<ul><li>c</li></ul>", "text"}, emitted)
	assert.Equal(t, idle, state.kind)
	assert.Empty(t, state.items)
	assert.Empty(t, state.flush())
}

func TestFold(t *testing.T) {
	var tests = []struct {
		name     string
		fold     func(string) string
		input    string
		expected string
	}{
		{
			name:     "quote at end of input",
			fold:     foldBlockquotes,
			input:    "> a\n> b\n> c",
			expected: "<blockquote>a<br>b<br>c</blockquote>",
		},
		{
			name:     "quote followed by a blank line",
			fold:     foldBlockquotes,
			input:    "> a\n> b\n> c\n",
			expected: "<blockquote>a<br>b<br>c</blockquote>\n",
		},
		{
			name:     "empty quote line",
			fold:     foldBlockquotes,
			input:    "> a\n>\n> b",
			expected: "<blockquote>a<br><br>b</blockquote>",
		},
		{
			name:     "two quotes",
			fold:     foldBlockquotes,
			input:    "> a\ntext\n> b",
			expected: "<blockquote>a</blockquote>\ntext\n<blockquote>b</blockquote>",
		},
		{
			name:     "list kinds",
			fold:     foldLists,
			input:    "- a\n1. b\nc",
			expected: "<ul><li>a</li></ul>\n<ol><li>b</li></ol>\nc",
		},
		{
			name:     "list items need a space after the marker",
			fold:     foldLists,
			input:    "-a\n1.b\n---",
			expected: "-a\n1.b\n---",
		},
		{
			name:     "multi-digit ordered items",
			fold:     foldLists,
			input:    "9. nine\n10. ten",
			expected: "<ol><li>nine</li><li>ten</li></ol>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fold(tt.input))
		})
	}
}

func TestExtractCode(t *testing.T) {
	r := &renderer{}
	actual := r.extractCode("before\n```python\nx = 1\n\ny = 2\n```\n    indented\nafter")
	assert.Equal(t, "before\n\uE0000\uE001\n\uE0001\uE001\nafter", actual)
	require.Len(t, r.fragments, 2)
	assert.Equal(t, "<pre><code class=\"language-python\">x = 1\n\ny = 2</code></pre>", r.fragments[0])
	assert.Equal(t, "<pre><code>indented</code></pre>", r.fragments[1])

	assert.Equal(t, "before <pre><code>indented</code></pre> after", r.restore("before \uE0001\uE001 after"))
	// Unknown placeholders are dropped
	assert.Equal(t, "x", r.restore("x\uE0009\uE001"))
}

func TestInlineRulesOrder(t *testing.T) {
	var names []string
	for _, rl := range inlineRules {
		names = append(names, rl.name)
	}
	assert.Equal(t, []string{
		"h3", "h2", "h1",
		"strong-em", "strong", "em", "del",
		"code", "link", "image",
		"hr", "hr",
	}, names)
}

func TestSoftBreak(t *testing.T) {
	var tests = []struct {
		current  string
		next     string
		expected bool
	}{
		{"line", "line", true},
		{"Label:", "line", false},
		{"Label:  ", "- item", false},
		{"line", "", false},
		{"line", "   ", false},
		{"line", "- item", false},
		{"line", "* item", false},
		{"line", "+ item", false},
		{"line", "1. item", false},
		{"line", "# heading", false},
		{"line", "> quote", false},
		{"line", "&gt; quote", false},
		{"line", "<ul>", false},
		{"line", "\uE0000\uE001", false},
		{"line", "-5 degrees", true},
		{"line", "2024 was great", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, softBreak(tt.current, tt.next), "%q -> %q", tt.current, tt.next)
	}
}
