package core

import (
	"bufio"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// IgnoreFile lists the paths hidden from listings and searches, using a
// subset of the .gitignore syntax.
type IgnoreFile struct {
	Entries GlobPaths
}

// MustExcludeFile tests a path relative to the root directory.
func (i *IgnoreFile) MustExcludeFile(path string, dir bool) bool {
	path = strings.Trim(filepath.ToSlash(path), "/")
	if dir {
		path += "/"
	}
	return i.Entries.Match(path)
}

func parseIgnoreFile(content string) *IgnoreFile {
	var result IgnoreFile
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result.Entries = append(result.Entries, GlobPath(line))
	}
	return &result
}

type GlobPath string

func (g GlobPath) Negate() bool {
	return strings.HasPrefix(string(g), "!")
}

func (g GlobPath) Expr() string {
	return strings.TrimPrefix(string(g), "!")
}

// Pattern converts the glob expression to a regular expression.
//
//	projects/      => /projects/.*   (any file under any projects directory)
//	/todo.md       => ^/todo\.md     (anchored to the root directory)
//	drafts/**/*.md => /drafts/.*[^/]*\.md
func (g GlobPath) Pattern() (*regexp.Regexp, error) {
	expr := g.Expr()
	leadingSlash := strings.HasPrefix(expr, "/")
	trailingSlash := strings.HasSuffix(expr, "/")
	if !leadingSlash {
		expr = "/" + expr
	}
	if trailingSlash {
		expr = expr + "**/"
	}

	var parts []string
	for _, part := range strings.Split(expr, "**/") {
		var subparts []string
		for _, subpart := range strings.Split(part, "*") {
			subparts = append(subparts, regexp.QuoteMeta(subpart))
		}
		parts = append(parts, strings.Join(subparts, "[^/]*")) // * => [^/]*
	}
	pattern := strings.Join(parts, ".*") // ** => .*

	if leadingSlash {
		pattern = "^" + pattern
	}
	return regexp.Compile(pattern)
}

// Match tests a given path. NB: Directories must have a trailing /.
func (g GlobPath) Match(path string) bool {
	if runtime.GOOS == "windows" {
		path = filepath.ToSlash(path)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	re, err := g.Pattern()
	if err != nil {
		CurrentLogger().Warnf("Ignoring invalid glob pattern %q: %v", g, err)
		return false
	}
	return re.MatchString(path)
}

type GlobPaths []GlobPath

// Match tests if a path is matched by at least one entry and by no negated entry.
func (g GlobPaths) Match(path string) bool {
	foundMatch := false
	for _, entry := range g {
		if entry.Match(path) {
			if entry.Negate() {
				// An exclusion matched, the file must no longer be excluded.
				return false
			}
			foundMatch = true
		}
	}
	return foundMatch
}
