package markdown_test

import (
	"testing"

	"github.com/b-hayes/notes/pkg/markdown"
	"github.com/stretchr/testify/assert"
)

func TestIsHeading(t *testing.T) {
	var tests = []struct {
		line    string
		heading bool
		title   string
		level   int
	}{
		{"# Title", true, "Title", 1},
		{"### Sub title", true, "Sub title", 3},
		{"###### Deep", true, "Deep", 6},
		{"#tag", false, "", 0},
		{"Not a heading", false, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			heading, title, level := markdown.IsHeading(tt.line)
			assert.Equal(t, tt.heading, heading)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.level, level)
		})
	}
}

func TestStripEmphasis(t *testing.T) {
	assert.Equal(t, "bold italic code", markdown.StripEmphasis("**bold** *italic* `code`"))
	assert.Equal(t, "under score", markdown.StripEmphasis("__under__ _score_"))
}

func TestSlug(t *testing.T) {
	var tests = []struct {
		name     string
		values   []string
		expected string
	}{
		{"simple", []string{"Shopping list"}, "shopping-list"},
		{"emphasis", []string{"My *favorite* **recipes**"}, "my-favorite-recipes"},
		{"accents", []string{"Café crème"}, "cafe-creme"},
		{"several values", []string{"Projects", "", "Roadmap 2024"}, "projects-roadmap-2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, markdown.Slug(tt.values...))
		})
	}
}
