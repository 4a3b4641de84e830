package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	dir := SetUpCollectionFromTempDir(t)
	c := CurrentCollection()

	result, err := c.Write("projects/todo", "# TODO\n")
	require.NoError(t, err)
	assert.Equal(t, "projects/todo.md", result.Path)
	assert.True(t, result.Created)
	assert.Contains(t, result.Patch, "+# TODO")
	assertFileContent(t, filepath.Join(dir, "projects", "todo.md"), "# TODO\n")

	result, err = c.Write("projects/todo.md", "# DONE\n")
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Contains(t, result.Patch, "-# TODO")
	assert.Contains(t, result.Patch, "+# DONE")
	assertFileContent(t, filepath.Join(dir, "projects", "todo.md"), "# DONE\n")

	// No temporary files are left behind
	entries, err := os.ReadDir(filepath.Join(dir, "projects"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = c.Write("", "empty path")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNew(t *testing.T) {
	dir := SetUpCollectionFromTempDir(t)
	c := CurrentCollection()

	result, err := c.New("ideas", "first")
	require.NoError(t, err)
	assert.Equal(t, "ideas.md", result.Path)

	_, err = c.New("ideas.md", "second")
	assert.ErrorIs(t, err, ErrNoteExists)
	assertFileContent(t, filepath.Join(dir, "ideas.md"), "first")
}

func TestAppend(t *testing.T) {
	dir := SetUpCollectionFromTempDir(t)
	c := CurrentCollection()

	var tests = []struct {
		name     string
		existing *string
		content  string
		expected string
	}{
		{"Missing note", nil, "first", "first"},
		{"Empty note", ptr(""), "first", "first"},
		{"Missing trailing newline", ptr("first"), "second", "first\nsecond"},
		{"Trailing newline", ptr("first\n"), "second", "first\nsecond"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "log.md")
			os.Remove(path)
			if tt.existing != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.existing), 0644))
			}
			_, err := c.Append("log", tt.content)
			require.NoError(t, err)
			assertFileContent(t, path, tt.expected)
		})
	}
}

func TestRead(t *testing.T) {
	SetUpCollectionFromFiles(t, map[string]string{
		"projects/todo.md": "# TODO\n",
	})
	c := CurrentCollection()

	note, err := c.Read("projects/todo")
	require.NoError(t, err)
	assert.Equal(t, &Note{
		Type:    EntryTypeFile,
		Path:    "projects/todo.md",
		Name:    "todo.md",
		Content: "# TODO\n",
	}, note)

	_, err = c.Read("projects/done")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDelete(t *testing.T) {
	dir := SetUpCollectionFromFiles(t, map[string]string{
		"inbox.md":                "# Inbox\n",
		"projects/todo.md":        "# TODO\n",
		"projects/archive/old.md": "# Old\n",
	})
	c := CurrentCollection()

	path, err := c.Delete("inbox")
	require.NoError(t, err)
	assert.Equal(t, "inbox.md", path)
	assert.NoFileExists(t, filepath.Join(dir, "inbox.md"))

	// Directories are deleted with their content
	path, err = c.Delete("projects")
	require.NoError(t, err)
	assert.Equal(t, "projects", path)
	assert.NoDirExists(t, filepath.Join(dir, "projects"))

	_, err = c.Delete("inbox")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	// The root directory cannot be deleted
	_, err = c.Delete("")
	assert.ErrorIs(t, err, ErrAccessDenied)
	_, err = c.Delete(".")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.DirExists(t, dir)
}

func TestMove(t *testing.T) {
	dir := SetUpCollectionFromFiles(t, map[string]string{
		"inbox.md":         "# Inbox\n",
		"done.md":          "# Done\n",
		"projects/todo.md": "# TODO\n",
	})
	c := CurrentCollection()

	t.Run("Note", func(t *testing.T) {
		result, err := c.Move("inbox", "archive/2024/inbox")
		require.NoError(t, err)
		assert.Equal(t, &MoveResult{From: "inbox.md", To: "archive/2024/inbox.md"}, result)
		assert.NoFileExists(t, filepath.Join(dir, "inbox.md"))
		assertFileContent(t, filepath.Join(dir, "archive", "2024", "inbox.md"), "# Inbox\n")
	})

	t.Run("Directory", func(t *testing.T) {
		result, err := c.Move("projects", "archive/projects")
		require.NoError(t, err)
		assert.Equal(t, &MoveResult{From: "projects", To: "archive/projects"}, result)
		assertFileContent(t, filepath.Join(dir, "archive", "projects", "todo.md"), "# TODO\n")
	})

	t.Run("Missing source", func(t *testing.T) {
		_, err := c.Move("missing", "elsewhere")
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})

	t.Run("Existing destination", func(t *testing.T) {
		_, err := c.Move("done", "archive/2024/inbox")
		assert.ErrorIs(t, err, ErrNoteExists)
		assertFileContent(t, filepath.Join(dir, "done.md"), "# Done\n")
	})

	t.Run("Directory inside itself", func(t *testing.T) {
		_, err := c.Move("archive", "archive/nested")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestMkdir(t *testing.T) {
	dir := SetUpCollectionFromTempDir(t)
	c := CurrentCollection()

	path, err := c.Mkdir("projects/2024/q1")
	require.NoError(t, err)
	assert.Equal(t, "projects/2024/q1", path)
	assert.DirExists(t, filepath.Join(dir, "projects", "2024", "q1"))

	// Existing directories are not an error
	_, err = c.Mkdir("projects")
	require.NoError(t, err)
}

func TestAccessDenied(t *testing.T) {
	SetUpCollectionFromFiles(t, map[string]string{
		"inbox.md": "# Inbox\n",
	})
	c := CurrentCollection()

	var tests = []struct {
		name string
		fn   func() error
	}{
		{"Write", func() error { _, err := c.Write("../outside", "x"); return err }},
		{"New", func() error { _, err := c.New("projects/../../outside", "x"); return err }},
		{"Append", func() error { _, err := c.Append("../outside", "x"); return err }},
		{"Read", func() error { _, err := c.Read("../../etc/passwd"); return err }},
		{"Delete", func() error { _, err := c.Delete("../outside"); return err }},
		{"Move source", func() error { _, err := c.Move("../outside", "inside"); return err }},
		{"Move destination", func() error { _, err := c.Move("inbox", "../outside"); return err }},
		{"Mkdir", func() error { _, err := c.Mkdir(".."); return err }},
		{"List", func() error { _, err := c.List("../", false); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), ErrAccessDenied)
		})
	}

	// The note is still there
	_, err := c.Read("inbox")
	assert.NoError(t, err)
}

/* Test Helpers */

func ptr(s string) *string {
	return &s
}

func assertFileContent(t *testing.T, path string, expected string) {
	actual, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, expected, string(actual))
}
