package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/b-hayes/notes/pkg/text"
	"github.com/google/uuid"
	"github.com/otiai10/copy"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

var (
	collectionMu        sync.Mutex
	collectionSingleton *Collection
)

// Collection is the directory of Markdown notes.
//
// All paths are relative to the root directory, use slashes, and cannot
// escape it. The default extension is appended to note paths missing one.
type Collection struct {
	Path   string
	config *Config
}

func CurrentCollection() *Collection {
	collectionMu.Lock()
	defer collectionMu.Unlock()
	if collectionSingleton == nil {
		var err error
		collectionSingleton, err = NewCollection(CurrentConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to init current collection: %v\n", err)
			os.Exit(1)
		}
	}
	return collectionSingleton
}

func NewCollection(config *Config) (*Collection, error) {
	absolutePath, err := filepath.Abs(config.RootDirectory)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(absolutePath, 0755); err != nil {
		return nil, fmt.Errorf("unable to create root directory: %w", err)
	}
	return &Collection{
		Path:   absolutePath,
		config: config,
	}, nil
}

// Config returns the configuration of the collection.
func (c *Collection) Config() *Config {
	return c.config
}

// GetAbsolutePath resolves a path relative to the root directory.
// Paths escaping the root directory are rejected.
func (c *Collection) GetAbsolutePath(relativePath string) (string, error) {
	absolutePath := filepath.Join(c.Path, filepath.FromSlash(relativePath))
	rel, err := filepath.Rel(c.Path, absolutePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q: %w", relativePath, ErrAccessDenied)
	}
	return absolutePath, nil
}

// GetRelativePath converts an absolute path inside the root directory to a slash-separated relative path.
func (c *Collection) GetRelativePath(absolutePath string) string {
	rel, err := filepath.Rel(c.Path, absolutePath)
	if err != nil {
		return absolutePath
	}
	return filepath.ToSlash(rel)
}

// notePath normalizes the path of a note, appending the default extension when missing.
func (c *Collection) notePath(relativePath string) (rel string, abs string, err error) {
	relativePath = strings.TrimRight(filepath.ToSlash(relativePath), "/")
	if strings.TrimSpace(relativePath) == "" {
		return "", "", fmt.Errorf("empty note path: %w", ErrInvalidArgument)
	}
	abs, err = c.GetAbsolutePath(text.EnsureExtension(relativePath, c.config.ConfigFile.DefaultExtension()))
	if err != nil {
		return "", "", err
	}
	return c.GetRelativePath(abs), abs, nil
}

// itemPath resolves a path designating a directory or a note.
// Existing directories win over notes sharing the same name without extension.
func (c *Collection) itemPath(relativePath string) (rel string, abs string, err error) {
	abs, err = c.GetAbsolutePath(relativePath)
	if err != nil {
		return "", "", err
	}
	if abs == c.Path {
		return "", "", fmt.Errorf("root directory: %w", ErrAccessDenied)
	}
	if stat, err := os.Stat(abs); err == nil && stat.IsDir() {
		return c.GetRelativePath(abs), abs, nil
	}
	return c.notePath(relativePath)
}

// Write saves the note, creating parent directories when missing.
func (c *Collection) Write(relativePath, content string) (*WriteResult, error) {
	rel, abs, err := c.notePath(relativePath)
	if err != nil {
		return nil, err
	}

	before, err := os.ReadFile(abs)
	created := errors.Is(err, fs.ErrNotExist)
	if err != nil && !created {
		return nil, fmt.Errorf("unable to read note %q: %w", rel, err)
	}

	if err := writeFileAtomic(abs, content); err != nil {
		return nil, err
	}
	CurrentLogger().Debugf("Saved %s (%d bytes)", rel, len(content))

	return &WriteResult{
		Path:    rel,
		Created: created,
		Patch:   godiffpatch.GeneratePatch(rel, string(before), content),
	}, nil
}

// writeFileAtomic writes the content to a temporary file in the same directory
// before renaming it so that readers never observe a partial file.
func writeFileAtomic(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create directory %q: %w", dir, err)
	}
	tmpPath := filepath.Join(dir, "."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmpPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("unable to write %q: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("unable to write %q: %w", path, err)
	}
	return nil
}

// New creates a note and fails if it already exists.
func (c *Collection) New(relativePath, content string) (*WriteResult, error) {
	rel, abs, err := c.notePath(relativePath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err == nil {
		return nil, fmt.Errorf("note %q: %w", rel, ErrNoteExists)
	}
	return c.Write(rel, content)
}

// Append adds content at the end of a note, starting on a new line.
// The note is created when missing.
func (c *Collection) Append(relativePath, content string) (*WriteResult, error) {
	rel, abs, err := c.notePath(relativePath)
	if err != nil {
		return nil, err
	}
	existing, err := os.ReadFile(abs)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to read note %q: %w", rel, err)
	}
	before := string(existing)
	if before != "" && !strings.HasSuffix(before, "\n") {
		before += "\n"
	}
	return c.Write(rel, before+content)
}

// Read returns the note content.
func (c *Collection) Read(relativePath string) (*Note, error) {
	rel, abs, err := c.notePath(relativePath)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("note %q: %w", rel, ErrNoteNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read note %q: %w", rel, err)
	}
	return &Note{
		Type:    EntryTypeFile,
		Path:    rel,
		Name:    filepath.Base(abs),
		Content: string(content),
	}, nil
}

// Delete removes a note or a directory with its content.
func (c *Collection) Delete(relativePath string) (string, error) {
	rel, abs, err := c.itemPath(relativePath)
	if err != nil {
		return "", err
	}
	stat, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%q: %w", rel, ErrNoteNotFound)
	}
	if err != nil {
		return "", err
	}
	if stat.IsDir() {
		err = os.RemoveAll(abs)
	} else {
		err = os.Remove(abs)
	}
	if err != nil {
		return "", fmt.Errorf("unable to delete %q: %w", rel, err)
	}
	CurrentLogger().Debugf("Deleted %s", rel)
	return rel, nil
}

// Move renames a note or a directory. Missing parent directories of the destination are created.
func (c *Collection) Move(fromPath, toPath string) (*MoveResult, error) {
	fromRel, fromAbs, err := c.itemPath(fromPath)
	if err != nil {
		return nil, err
	}
	stat, err := os.Stat(fromAbs)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("source %q: %w", fromRel, ErrNoteNotFound)
	}
	if err != nil {
		return nil, err
	}

	var toRel, toAbs string
	if stat.IsDir() {
		toAbs, err = c.GetAbsolutePath(toPath)
		toRel = c.GetRelativePath(toAbs)
		if err == nil && (toAbs == c.Path || strings.HasPrefix(toAbs, fromAbs+string(filepath.Separator))) {
			err = fmt.Errorf("cannot move %q into %q: %w", fromRel, toPath, ErrInvalidArgument)
		}
	} else {
		toRel, toAbs, err = c.notePath(toPath)
	}
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(toAbs); err == nil {
		return nil, fmt.Errorf("destination %q: %w", toRel, ErrNoteExists)
	}

	if err := os.MkdirAll(filepath.Dir(toAbs), 0755); err != nil {
		return nil, err
	}
	if err := rename(fromAbs, toAbs); err != nil {
		return nil, fmt.Errorf("unable to move %q to %q: %w", fromRel, toRel, err)
	}
	CurrentLogger().Debugf("Moved %s to %s", fromRel, toRel)
	return &MoveResult{From: fromRel, To: toRel}, nil
}

// rename falls back to copying when source and destination are on different devices.
func rename(from, to string) error {
	err := os.Rename(from, to)
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := copy.Copy(from, to); err != nil {
		return err
	}
	return os.RemoveAll(from)
}

// Mkdir creates a directory with its parents.
func (c *Collection) Mkdir(relativePath string) (string, error) {
	abs, err := c.GetAbsolutePath(relativePath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", fmt.Errorf("unable to create directory %q: %w", relativePath, err)
	}
	return c.GetRelativePath(abs), nil
}
