package store

import (
	"fmt"

	"mdnotes/internal/model"
)

// MaxNotes is the fixed capacity of the in-memory collection. Directory
// entries beyond this are ignored at load time.
const MaxNotes = 10

// Notebook is the in-memory source of truth: an ordered, fixed-capacity
// collection of notes. Insertion order is load order is display order.
// Notebook knows nothing about selection cursors; those belong to the
// navigation state machine.
type Notebook struct {
	notes []model.Note
}

func NewNotebook() *Notebook {
	return &Notebook{notes: make([]model.Note, 0, MaxNotes)}
}

func (nb *Notebook) Count() int { return len(nb.notes) }

// Create appends a note and returns its index (the old Count). The title
// must be non-empty, within the title byte budget, and unique. Rejected
// creates leave the notebook untouched.
func (nb *Notebook) Create(title, content string) (int, error) {
	if len(nb.notes) >= MaxNotes {
		return -1, ErrStoreFull
	}
	if title == "" {
		return -1, fmt.Errorf("%w: empty", ErrInvalidTitle)
	}
	if len(title) > model.MaxTitleLen {
		return -1, fmt.Errorf("%w: %q exceeds %d bytes", ErrInvalidTitle, title, model.MaxTitleLen)
	}
	for i := range nb.notes {
		if nb.notes[i].Title == title {
			return -1, fmt.Errorf("%w: duplicate %q", ErrInvalidTitle, title)
		}
	}
	nb.notes = append(nb.notes, model.Note{
		Title:   title,
		Content: model.Truncate(content, model.ContentCap),
	})
	return len(nb.notes) - 1, nil
}

// Note returns the note at i. The pointer stays valid for the life of the
// notebook; notes are never removed or reordered.
func (nb *Notebook) Note(i int) (*model.Note, error) {
	if i < 0 || i >= len(nb.notes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(nb.notes))
	}
	return &nb.notes[i], nil
}

// AppendLine appends one line to the note at i, rejecting the whole line
// on overflow.
func (nb *Notebook) AppendLine(i int, line string) error {
	n, err := nb.Note(i)
	if err != nil {
		return err
	}
	return n.AppendLine(line)
}

// Titles returns the titles in display order.
func (nb *Notebook) Titles() []string {
	out := make([]string, len(nb.notes))
	for i := range nb.notes {
		out[i] = nb.notes[i].Title
	}
	return out
}

// FindByTitle returns the index of the note with the given title, or -1.
func (nb *Notebook) FindByTitle(title string) int {
	for i := range nb.notes {
		if nb.notes[i].Title == title {
			return i
		}
	}
	return -1
}
