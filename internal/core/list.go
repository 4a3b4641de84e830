package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/b-hayes/notes/pkg/text"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// List returns the entries under a directory.
// Directories come first, then names are compared using the locale collation order.
// When recursive, the content of every subdirectory follows its entry.
func (c *Collection) List(relativePath string, recursive bool) ([]*Entry, error) {
	abs, err := c.directory(relativePath)
	if err != nil {
		return nil, err
	}

	var result []*Entry
	var walk func(dir string, depth int) error
	walk = func(dir string, depth int) error {
		entries, err := c.readDir(dir)
		if err != nil {
			return err
		}
		for i, entry := range entries {
			abspath := filepath.Join(dir, entry.Name())
			relpath := c.GetRelativePath(abspath)
			item := &Entry{
				Name: entry.Name(),
			}
			if entry.IsDir() {
				item.Type = EntryTypeDir
				item.Path = relpath
			} else {
				item.Type = EntryTypeFile
				item.Path = text.TrimExtension(relpath)
			}
			if recursive {
				item.IndentLevel = depth
				item.IsLastChild = i == len(entries)-1
			}
			result = append(result, item)

			if recursive && entry.IsDir() {
				if err := walk(abspath, depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(abs, 0); err != nil {
		return nil, err
	}
	return result, nil
}

// Tree returns the nested folder structure of the collection.
func (c *Collection) Tree() ([]*Entry, error) {
	var walk func(dir string) ([]*Entry, error)
	walk = func(dir string) ([]*Entry, error) {
		entries, err := c.readDir(dir)
		if err != nil {
			return nil, err
		}
		result := []*Entry{}
		for _, entry := range entries {
			abspath := filepath.Join(dir, entry.Name())
			item := &Entry{
				Type: EntryTypeFile,
				Path: c.GetRelativePath(abspath),
				Name: entry.Name(),
			}
			if entry.IsDir() {
				item.Type = EntryTypeFolder
				item.Children, err = walk(abspath)
				if err != nil {
					return nil, err
				}
			}
			result = append(result, item)
		}
		return result, nil
	}
	return walk(c.Path)
}

// directory resolves an existing directory. An empty path designates the root directory.
func (c *Collection) directory(relativePath string) (string, error) {
	abs, err := c.GetAbsolutePath(relativePath)
	if err != nil {
		return "", err
	}
	stat, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !stat.IsDir()) {
		return "", fmt.Errorf("directory %q: %w", relativePath, ErrNoteNotFound)
	}
	if err != nil {
		return "", err
	}
	return abs, nil
}

// readDir returns the visible entries of a directory, sorted.
// Hidden files, ignored paths, and files with unsupported extensions are skipped.
func (c *Collection) readDir(dir string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to list %q: %w", c.GetRelativePath(dir), err)
	}

	var visible []fs.DirEntry
	for _, entry := range entries {
		if c.mustSkip(path.Join(c.GetRelativePath(dir), entry.Name()), entry) {
			continue
		}
		visible = append(visible, entry)
	}

	sortEntries(visible)
	return visible, nil
}

func (c *Collection) mustSkip(relpath string, entry fs.DirEntry) bool {
	if strings.HasPrefix(entry.Name(), ".") {
		return true
	}
	if c.config.IgnoreFile.MustExcludeFile(relpath, entry.IsDir()) {
		CurrentLogger().Tracef("Ignoring %s", relpath)
		return true
	}
	if entry.IsDir() {
		return false
	}
	return !entry.Type().IsRegular() || !c.config.ConfigFile.SupportExtension(entry.Name())
}

// sortEntries puts directories first then sort by name using the locale collation order.
func sortEntries(entries []fs.DirEntry) {
	collator := collate.New(language.Und, collate.IgnoreCase)
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		if a.IsDir() != b.IsDir() {
			if a.IsDir() {
				return -1
			}
			return 1
		}
		if cmp := collator.CompareString(a.Name(), b.Name()); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.Name(), b.Name())
	})
}
