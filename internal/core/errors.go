package core

import "errors"

var (
	// ErrNoteNotFound is returned when a note or a directory does not exist.
	ErrNoteNotFound = errors.New("not found")
	// ErrNoteExists is returned when creating or moving onto an existing path.
	ErrNoteExists = errors.New("already exists")
	// ErrAccessDenied is returned for paths outside the root directory.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidArgument is returned for malformed input (ex: empty search term).
	ErrInvalidArgument = errors.New("invalid argument")
)
