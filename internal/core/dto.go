package core

// Entry types
const (
	EntryTypeDir    = "dir"
	EntryTypeFile   = "file"
	EntryTypeFolder = "folder"
	EntryTypeMatch  = "match"
)

// Note is a Markdown file with its content.
type Note struct {
	Type    string `json:"type" yaml:"type"`
	Path    string `json:"path" yaml:"path"`
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// Entry is an item returned when listing a directory.
//
// Listings use the types "dir" and "file". The folder structure uses the
// types "folder" and "file" with nested children.
type Entry struct {
	Type        string   `json:"type" yaml:"type"`
	Path        string   `json:"path" yaml:"path"`
	Name        string   `json:"name" yaml:"name"`
	IndentLevel int      `json:"indentLevel" yaml:"indentLevel"`
	IsLastChild bool     `json:"isLastChild" yaml:"isLastChild"`
	Children    []*Entry `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsDir returns if the entry is a directory.
func (e *Entry) IsDir() bool {
	return e.Type == EntryTypeDir || e.Type == EntryTypeFolder
}

// SearchMatch is a single line matching a search.
type SearchMatch struct {
	Type    string `json:"type" yaml:"type"`
	Path    string `json:"path" yaml:"path"`
	Name    string `json:"name" yaml:"name"`
	Text    string `json:"text" yaml:"text"`
	LineNum int    `json:"lineNum" yaml:"lineNum"`
}

// SearchResult contains either the matching lines or the matching files.
type SearchResult struct {
	Files   []string       `json:"files" yaml:"files"`
	Matches []*SearchMatch `json:"matches" yaml:"matches"`
}

// WriteResult describes a saved note.
type WriteResult struct {
	Path    string `json:"path" yaml:"path"`
	Created bool   `json:"created" yaml:"created"`
	// Unified diff between the previous and the new content
	Patch string `json:"-" yaml:"-"`
}

// MoveResult describes a moved note or directory.
type MoveResult struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// JournalEntry is the journal of a day.
type JournalEntry struct {
	Path    string `json:"path" yaml:"path"`
	Date    string `json:"date" yaml:"date"`
	Time    string `json:"time,omitempty" yaml:"time,omitempty"`
	Content string `json:"content" yaml:"content"`
	Exists  bool   `json:"exists" yaml:"exists"`
}
