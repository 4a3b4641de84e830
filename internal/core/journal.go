package core

import (
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/b-hayes/notes/pkg/clock"
)

// JournalPath returns the path of the journal for the current day.
func (c *Collection) JournalPath() (string, error) {
	now, err := c.journalNow()
	if err != nil {
		return "", err
	}
	return c.journalPath(now.Format("2006-01-02")), nil
}

func (c *Collection) journalPath(date string) string {
	return path.Join(c.config.ConfigFile.Journal.Dir, date) + c.config.ConfigFile.DefaultExtension()
}

// Journal adds a timestamped entry to the journal of the current day.
// The journal is created with the date as title on the first entry of the day.
// When content is empty, the journal is returned without being modified.
func (c *Collection) Journal(content string) (*JournalEntry, error) {
	now, err := c.journalNow()
	if err != nil {
		return nil, err
	}
	date := now.Format("2006-01-02")
	journalPath := c.journalPath(date)

	entry := &JournalEntry{
		Path: journalPath,
		Date: date,
	}

	note, err := c.Read(journalPath)
	if err != nil && !errors.Is(err, ErrNoteNotFound) {
		return nil, err
	}
	if note != nil {
		entry.Content = note.Content
		entry.Exists = true
	}

	if content == "" {
		return entry, nil
	}

	existing := entry.Content
	if !entry.Exists {
		existing = fmt.Sprintf("# %s\n\n", date)
	}
	entry.Time = now.Format("15:04")
	entry.Content = existing + fmt.Sprintf("## %s\n%s\n\n", entry.Time, content)
	if _, err := c.Write(journalPath, entry.Content); err != nil {
		return nil, err
	}
	entry.Exists = true
	CurrentLogger().Infof("Added journal entry at %s in %s", entry.Time, journalPath)
	return entry, nil
}

// journalNow returns the current time in the journal time zone.
func (c *Collection) journalNow() (time.Time, error) {
	loc, err := c.config.ConfigFile.Location()
	if err != nil {
		return time.Time{}, err
	}
	return clock.Now().In(loc), nil
}
