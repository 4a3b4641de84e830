package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/otiai10/copy"
)

// SetUpFromGoldenDir populates a temp directory based on the current test name.
func SetUpFromGoldenDir(t *testing.T) string {
	return SetUpFromGoldenDirNamed(t, t.Name())
}

// SetUpFromGoldenDirNamed populates a temp directory with a copy of testdata/<dirname>.
// Tests are free to modify the copy.
func SetUpFromGoldenDirNamed(t *testing.T, dirname string) string {
	dirIn := filepath.Join("testdata", dirname)
	dirOut := t.TempDir()
	if err := copy.Copy(dirIn, dirOut); err != nil {
		t.Fatalf("failed copying golden dir %s: %v", dirIn, err)
	}
	return dirOut
}

// SetUpFromFiles populates a temp directory with the given files indexed by their relative path.
func SetUpFromFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for relpath, content := range files {
		abspath := filepath.Join(dir, filepath.FromSlash(relpath))
		if err := os.MkdirAll(filepath.Dir(abspath), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abspath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// GoldenFile reads the content of the golden file of the current test.
func GoldenFile(t *testing.T, ext string) []byte {
	return GoldenFileNamed(t, t.Name()+ext)
}

// GoldenFileNamed reads the content of the given golden file.
func GoldenFileNamed(t *testing.T, filename string) []byte {
	path := filepath.Join("testdata", filename)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading golden file %s: %v", path, err)
	}
	return b
}
