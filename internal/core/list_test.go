package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	SetUpCollectionFromGoldenDirNamed(t, "collection")
	c := CurrentCollection()

	t.Run("Root directory", func(t *testing.T) {
		entries, err := c.List("", false)
		require.NoError(t, err)
		assert.Equal(t, []*Entry{
			{Type: EntryTypeDir, Path: "_journal", Name: "_journal"},
			{Type: EntryTypeDir, Path: "projects", Name: "projects"},
			{Type: EntryTypeFile, Path: "apple", Name: "apple.md"},
			{Type: EntryTypeFile, Path: "Banana", Name: "Banana.md"},
			{Type: EntryTypeFile, Path: "README", Name: "README.md"},
			{Type: EntryTypeFile, Path: "zebra", Name: "zebra.md"},
		}, entries)
	})

	t.Run("Subdirectory", func(t *testing.T) {
		entries, err := c.List("projects", false)
		require.NoError(t, err)
		assert.Equal(t, []*Entry{
			{Type: EntryTypeDir, Path: "projects/Archive", Name: "Archive"},
			{Type: EntryTypeFile, Path: "projects/todo", Name: "todo.md"},
		}, entries)
	})

	t.Run("Recursive", func(t *testing.T) {
		entries, err := c.List(".", true)
		require.NoError(t, err)
		assert.Equal(t, []*Entry{
			{Type: EntryTypeDir, Path: "_journal", Name: "_journal", IndentLevel: 0},
			{Type: EntryTypeFile, Path: "_journal/2024-01-01", Name: "2024-01-01.md", IndentLevel: 1, IsLastChild: true},
			{Type: EntryTypeDir, Path: "projects", Name: "projects", IndentLevel: 0},
			{Type: EntryTypeDir, Path: "projects/Archive", Name: "Archive", IndentLevel: 1},
			{Type: EntryTypeFile, Path: "projects/Archive/old", Name: "old.md", IndentLevel: 2, IsLastChild: true},
			{Type: EntryTypeFile, Path: "projects/todo", Name: "todo.md", IndentLevel: 1, IsLastChild: true},
			{Type: EntryTypeFile, Path: "apple", Name: "apple.md", IndentLevel: 0},
			{Type: EntryTypeFile, Path: "Banana", Name: "Banana.md", IndentLevel: 0},
			{Type: EntryTypeFile, Path: "README", Name: "README.md", IndentLevel: 0},
			{Type: EntryTypeFile, Path: "zebra", Name: "zebra.md", IndentLevel: 0, IsLastChild: true},
		}, entries)
	})

	t.Run("Missing directory", func(t *testing.T) {
		_, err := c.List("missing", false)
		assert.ErrorIs(t, err, ErrNoteNotFound)
		_, err = c.List("README.md", false)
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})
}

func TestListIgnoredPaths(t *testing.T) {
	SetUpCollectionFromFiles(t, map[string]string{
		".notesignore":      "drafts/\n*.tmp.md\n",
		"drafts/secret.md":  "# Secret",
		"ideas.tmp.md":      "# Tmp",
		"ideas.md":          "# Ideas",
		"node_modules/x.md": "# Not a note",
	})

	entries, err := CurrentCollection().List("", true)
	require.NoError(t, err)
	var paths []string
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}
	// The default ignore file is replaced
	assert.Equal(t, []string{"node_modules", "node_modules/x", "ideas"}, paths)
}

func TestTree(t *testing.T) {
	SetUpCollectionFromGoldenDirNamed(t, "collection")

	tree, err := CurrentCollection().Tree()
	require.NoError(t, err)

	var names []string
	for _, entry := range tree {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{"_journal", "projects", "apple.md", "Banana.md", "README.md", "zebra.md"}, names)

	journal := tree[0]
	assert.Equal(t, EntryTypeFolder, journal.Type)
	assert.Equal(t, []*Entry{
		{Type: EntryTypeFile, Path: "_journal/2024-01-01.md", Name: "2024-01-01.md"},
	}, journal.Children)

	projects := tree[1]
	require.Len(t, projects.Children, 2)
	archive := projects.Children[0]
	assert.Equal(t, EntryTypeFolder, archive.Type)
	assert.Equal(t, "projects/Archive", archive.Path)
	assert.True(t, archive.IsDir())
	assert.Equal(t, "projects/Archive/old.md", archive.Children[0].Path)
	assert.Equal(t, "projects/todo.md", projects.Children[1].Path)

	// Files have no children
	assert.Nil(t, tree[2].Children)
	assert.False(t, tree[2].IsDir())
}
