package text_test

import (
	"testing"

	"github.com/b-hayes/notes/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestUnescapeTestContent(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected string
	}{
		{"Fence", "‛‛‛go", "```go"},
		{"Code span", "use ”x”", "use `x`"},
		{"Mixed", "”a‛", "`a`"},
		{"No special characters", "plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.UnescapeTestContent(tt.input))
		})
	}
}
