package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/b-hayes/notes/internal/testutil"
	"github.com/b-hayes/notes/pkg/clock"
)

// Configuration used by tests
const testConfig = `
[preview]
debounce="10ms"

[journal]
timezone="UTC"
`

// Reset forces singletons to be recreated. Useful between unit tests.
func Reset() {
	configMu.Lock()
	configSingleton = nil
	configHome = ""
	configMu.Unlock()

	collectionMu.Lock()
	collectionSingleton = nil
	collectionMu.Unlock()

	loggerMu.Lock()
	loggerSingleton = nil
	loggerMu.Unlock()
}

/* Fixtures */

// SetUpCollectionFromTempDir configures an empty temp directory as the current collection.
func SetUpCollectionFromTempDir(t *testing.T) string {
	dirname := t.TempDir()
	configureDir(t, dirname)
	return dirname
}

// SetUpCollectionFromGoldenDir configures a copy of testdata/<test name> as the current collection.
func SetUpCollectionFromGoldenDir(t *testing.T) string {
	return SetUpCollectionFromGoldenDirNamed(t, t.Name())
}

// SetUpCollectionFromGoldenDirNamed configures a copy of testdata/<dirname> as the current collection.
func SetUpCollectionFromGoldenDirNamed(t *testing.T, dirname string) string {
	dir := testutil.SetUpFromGoldenDirNamed(t, dirname)
	configureDir(t, dir)
	return dir
}

// SetUpCollectionFromFiles configures a temp directory containing the given notes as the current collection.
func SetUpCollectionFromFiles(t *testing.T, files map[string]string) string {
	dir := testutil.SetUpFromFiles(t, files)
	configureDir(t, dir)
	return dir
}

func configureDir(t *testing.T, dirname string) {
	configDir := filepath.Join(dirname, ConfigDirName)
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.Mkdir(configDir, os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(configDir, "config"), []byte(testConfig), 0644); err != nil {
			t.Fatal(err)
		}
	}
	Reset()
	// Force the application to consider the temporary directory as the home
	t.Setenv("NOTES_HOME", dirname)
	t.Cleanup(Reset)

	// Force debug level in tests to diagnose more easily
	CurrentLogger().SetVerboseLevel(VerboseDebug)
	CurrentLogger().Debugf("Set up directory %q", dirname)
}

/* Reproducible Tests */

// FreezeAt wraps the clock API to register the cleanup function at the end of the test.
func FreezeAt(t *testing.T, point time.Time) time.Time {
	clock.FreezeAt(point)
	t.Cleanup(clock.Unfreeze)
	return point
}
