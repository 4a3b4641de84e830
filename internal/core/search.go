package core

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/b-hayes/notes/pkg/text"
)

// Format of grep -n output: <path>:<line>:<text>
var reGrepLine = regexp.MustCompile(`^(.+?):(\d+):(.*)$`)

// Search looks for a term in notes using the configured search command (grep by default).
// When listOnly is set, only the paths of matching notes are returned.
func (c *Collection) Search(ctx context.Context, term string, listOnly bool) (*SearchResult, error) {
	if text.IsBlank(term) {
		return nil, fmt.Errorf("empty search term: %w", ErrInvalidArgument)
	}

	output, err := c.grep(ctx, term, listOnly)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Files:   []string{},
		Matches: []*SearchMatch{},
	}
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if listOnly {
			relpath := c.GetRelativePath(line)
			if c.config.IgnoreFile.MustExcludeFile(relpath, false) {
				continue
			}
			result.Files = append(result.Files, text.TrimExtension(relpath))
			continue
		}
		match, ok := c.parseMatch(line)
		if !ok {
			CurrentLogger().Debugf("Ignoring unexpected search output %q", line)
			continue
		}
		if c.config.IgnoreFile.MustExcludeFile(match.Path, false) {
			continue
		}
		match.Path = text.TrimExtension(match.Path)
		result.Matches = append(result.Matches, match)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// grep runs the search command. The term is passed as an argument, never interpreted by a shell.
func (c *Collection) grep(ctx context.Context, term string, listOnly bool) ([]byte, error) {
	args := []string{"-rn"}
	if listOnly {
		args = []string{"-rl"}
	}
	for _, extension := range c.config.ConfigFile.Core.Extensions {
		args = append(args, "--include=*."+extension)
	}
	// Hidden directories are skipped like in listings
	args = append(args, "--exclude-dir=.*", "-e", term, c.Path)

	command := c.config.ConfigFile.Search.Command
	CurrentLogger().Debugf("Running command %q", command+" "+strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stderr = &stderr
	output, err := cmd.Output()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		// No matches
		return nil, nil
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("search failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	return output, nil
}

func (c *Collection) parseMatch(line string) (*SearchMatch, bool) {
	submatch := reGrepLine.FindStringSubmatch(line)
	if submatch == nil {
		return nil, false
	}
	lineNum, err := strconv.Atoi(submatch[2])
	if err != nil || lineNum < 1 {
		return nil, false
	}
	return &SearchMatch{
		Type:    EntryTypeMatch,
		Path:    c.GetRelativePath(filepath.FromSlash(submatch[1])),
		Name:    submatch[3],
		Text:    submatch[3],
		LineNum: lineNum,
	}, true
}
