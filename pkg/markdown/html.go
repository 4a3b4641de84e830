package markdown

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/yuin/goldmark"
)

// Engine converts a Markdown document to HTML.
type Engine func(md string) string

// DefaultEngine is the engine used by the live preview.
const DefaultEngine = "builtin"

var engines = map[string]Engine{
	"builtin":    Render,
	"gomarkdown": ToHTML,
	"goldmark":   ToHTMLGoldmark,
}

// LookupEngine returns the engine registered under the given name.
// An empty name returns the default engine.
func LookupEngine(name string) (Engine, error) {
	if name == "" {
		name = DefaultEngine
	}
	engine, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown markdown engine %q (supported: %s)", name, strings.Join(EngineNames(), ", "))
	}
	return engine, nil
}

// EngineNames returns the names of all engines in alphabetical order.
func EngineNames() []string {
	var names []string
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToHTML converts using the CommonMark-like parser of gomarkdown.
func ToHTML(md string) string {
	html := markdown.ToHTML([]byte(md), nil, nil)
	return strings.TrimSpace(string(html))
}

// ToHTMLGoldmark converts using goldmark. Raw HTML is omitted.
func ToHTMLGoldmark(md string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return ""
	}
	return strings.TrimSpace(buf.String())
}
