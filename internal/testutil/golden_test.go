package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUpFromGoldenDir(t *testing.T) {
	dirname := SetUpFromGoldenDir(t)

	assertFileContains(t, filepath.Join(dirname, "notes.md"), "# Notes\n\nMy personal notes\n")
	assertFileContains(t, filepath.Join(dirname, "projects/todo.md"), "# TODO\n\n- [x] Create backlog\n- [ ] Deploy\n")

	// The copy can be modified without altering the golden dir
	require.NoError(t, os.WriteFile(filepath.Join(dirname, "notes.md"), []byte("changed"), 0644))
	assert.Equal(t, "# Notes\n\nMy personal notes\n", string(GoldenFileNamed(t, "TestSetUpFromGoldenDir/notes.md")))
}

func TestSetUpFromFiles(t *testing.T) {
	dirname := SetUpFromFiles(t, map[string]string{
		"a.md":         "A",
		"sub/dir/b.md": "B",
	})
	assertFileContains(t, filepath.Join(dirname, "a.md"), "A")
	assertFileContains(t, filepath.Join(dirname, "sub", "dir", "b.md"), "B")
}

func TestGoldenFile(t *testing.T) {
	content := GoldenFile(t, ".html")
	assert.Equal(t, "<h1>Hi</h1>\n", string(content))
}

/* Test Assertions */

func assertFileContains(t *testing.T, filename string, expected string) {
	actual, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, expected, string(actual))
}
