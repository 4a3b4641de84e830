package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/b-hayes/notes/pkg/markdown"
	"github.com/pelletier/go-toml/v2"
)

// How many parent directories to traverse before giving up on finding a .notes directory
const maxDepth = 10

// Name of the directory containing the configuration
const ConfigDirName = ".notes"

// Default .notes/config content
const DefaultConfig = `
[core]
extensions=["md"]

[server]
port=3000

[preview]
engine="builtin"
debounce="300ms"
placeholder='<div class="welcome-message"><p>Start typing to see the preview...</p></div>'

[journal]
dir="_journal"

[search]
command="grep"
`

// Default .notesignore content
const DefaultIgnore = `
.git/
node_modules/
`

var (
	configMu        sync.Mutex
	configSingleton *Config
	// Set by the --dir flag
	configHome string
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Core    ConfigCore
	Server  ConfigServer
	Preview ConfigPreview
	Journal ConfigJournal
	Search  ConfigSearch
}
type ConfigCore struct {
	Extensions []string
}
type ConfigServer struct {
	Port int
	Host string
}
type ConfigPreview struct {
	Engine      string
	Debounce    string
	Placeholder string
}
type ConfigJournal struct {
	Dir      string
	Timezone string
}
type ConfigSearch struct {
	Command string
}

// SupportExtension checks if the given file extension must be considered.
func (f *ConfigFile) SupportExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".") // ".md" => "md"
	for _, extension := range f.Core.Extensions {
		if strings.EqualFold(extension, ext) { // case-insensitive
			return true
		}
	}
	return false
}

// DefaultExtension returns the extension appended to note paths missing one.
func (f *ConfigFile) DefaultExtension() string {
	if len(f.Core.Extensions) == 0 {
		return ".md"
	}
	return "." + f.Core.Extensions[0]
}

// DebounceDelay returns the quiet period before refreshing the preview.
func (f *ConfigFile) DebounceDelay() (time.Duration, error) {
	if f.Preview.Debounce == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(f.Preview.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid [preview] debounce %q: %w", f.Preview.Debounce, err)
	}
	return d, nil
}

// Location returns the time zone used for journal dates.
// The local time zone is used when none is configured.
func (f *ConfigFile) Location() (*time.Location, error) {
	if f.Journal.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(f.Journal.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid [journal] timezone %q: %w", f.Journal.Timezone, err)
	}
	return loc, nil
}

// Address returns the address the server listens on.
func (f *ConfigFile) Address() string {
	return fmt.Sprintf("%s:%d", f.Server.Host, f.Server.Port)
}

/* Main config */

type Config struct {
	// Absolute top directory containing the notes
	RootDirectory string

	// .notes/config content
	ConfigFile ConfigFile

	// .notesignore content
	IgnoreFile IgnoreFile
}

// SetHome overrides the directory used to locate the notes.
func SetHome(dir string) {
	configMu.Lock()
	defer configMu.Unlock()
	configHome = dir
	configSingleton = nil
}

func CurrentConfig() *Config {
	configMu.Lock()
	defer configMu.Unlock()
	if configSingleton == nil {
		config, err := ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
		configSingleton = config
	}
	return configSingleton
}

// currentHome returns the directory passed with --dir, $NOTES_HOME, or the working directory.
func currentHome() string {
	if configHome != "" {
		return mustAbs(configHome, "--dir")
	}
	if path, ok := os.LookupEnv("NOTES_HOME"); ok {
		return mustAbs(path, "$NOTES_HOME")
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

func mustAbs(path, source string) string {
	abspath, err := filepath.Abs(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to evaluate %s: %v\n", source, err)
		os.Exit(1)
	}
	if _, err := os.Stat(abspath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Directory in %s does not exist: %s\n", source, abspath)
		os.Exit(1)
	}
	return abspath
}

// ReadConfigFromDirectory loads the configuration by searching for a .notes directory in the given directory
// or any parent directories. The given directory is used as root with the default configuration
// when no .notes directory is found.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath, err := findRootDirectory(path)
	if err != nil {
		return nil, err
	}

	configContent, err := readOptionalFile(filepath.Join(rootPath, ConfigDirName, "config"), DefaultConfig)
	if err != nil {
		return nil, err
	}
	configFile, err := parseConfigFile(configContent)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s/config file: %w", ConfigDirName, err)
	}
	if err := configFile.overrideFromEnv(); err != nil {
		return nil, err
	}

	ignoreContent, err := readOptionalFile(filepath.Join(rootPath, ".notesignore"), DefaultIgnore)
	if err != nil {
		return nil, err
	}

	return &Config{
		RootDirectory: rootPath,
		ConfigFile:    *configFile,
		IgnoreFile:    *parseIgnoreFile(ignoreContent),
	}, nil
}

func findRootDirectory(path string) (string, error) {
	startPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	rootPath := startPath
	for i := 0; i < maxDepth; i++ {
		_, err := os.Stat(filepath.Join(rootPath, ConfigDirName))
		if err == nil {
			return rootPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("error while searching for configuration directory: %w", err)
		}
		parent := filepath.Dir(rootPath)
		if parent == rootPath {
			// Root directory reached
			break
		}
		rootPath = parent
	}
	return startPath, nil
}

// readOptionalFile returns the file content or the default content when the file does not exist.
func readOptionalFile(path string, defaultContent string) (string, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultContent, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	// Start from the default values. Keys present in the file override them.
	var result ConfigFile
	if err := decodeConfig(DefaultConfig, &result); err != nil {
		return nil, fmt.Errorf("default configuration is broken: %w", err)
	}
	if err := decodeConfig(content, &result); err != nil {
		return nil, err
	}
	if _, err := markdown.LookupEngine(result.Preview.Engine); err != nil {
		return nil, err
	}
	if _, err := result.DebounceDelay(); err != nil {
		return nil, err
	}
	if _, err := result.Location(); err != nil {
		return nil, err
	}
	return &result, nil
}

func decodeConfig(content string, result *ConfigFile) error {
	d := toml.NewDecoder(strings.NewReader(content))
	d.DisallowUnknownFields()
	return d.Decode(result)
}

func (f *ConfigFile) overrideFromEnv() error {
	if value, ok := os.LookupEnv("PORT"); ok && value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid $PORT %q: %w", value, err)
		}
		f.Server.Port = port
	}
	return nil
}
