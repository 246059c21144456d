package store

import "errors"

var (
	// ErrStoreFull is returned by Create once the notebook holds MaxNotes.
	ErrStoreFull = errors.New("note store full")

	// ErrInvalidTitle is returned for empty, over-long, or duplicate titles.
	ErrInvalidTitle = errors.New("invalid note title")

	// ErrIndexOutOfRange indicates a caller bug: the navigation layer must
	// never construct an index outside the validated range.
	ErrIndexOutOfRange = errors.New("note index out of range")
)
