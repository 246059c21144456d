package app

import (
	"log/slog"

	"mdnotes/internal/model"
	"mdnotes/internal/store"
)

// Machine drives the mode state machine over a notebook with write-through
// persistence. It owns State exclusively; the notebook never reads or
// mutates cursors.
//
// Rejections (full store, invalid title, content overflow) are silent from
// the user's point of view: the machine stays in the originating mode and
// leaves state untouched. Each one is logged so the behavior remains
// observable at the boundary.
type Machine struct {
	State  State
	Notes  *store.Notebook
	Files  store.Store
	Logger *slog.Logger
}

func New(notes *store.Notebook, files store.Store, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Machine{
		State:  NewState(),
		Notes:  notes,
		Files:  files,
		Logger: logger,
	}
}

// HandleEvent applies one abstract input event and reports what the front
// end should do next. Unlisted (mode, event) pairs are no-ops; only the
// menu accepts the exit signal.
func (m *Machine) HandleEvent(ev Event) Effect {
	switch m.State.Mode {
	case ModeMenu:
		return m.handleMenu(ev)
	case ModeNoteList:
		return m.handleNoteList(ev)
	case ModeViewNote:
		return m.handleViewNote(ev)
	default:
		return EffectNone
	}
}

func (m *Machine) handleMenu(ev Event) Effect {
	switch ev {
	case EventUp:
		m.State.MenuIndex = (m.State.MenuIndex - 1 + menuEntries) % menuEntries
	case EventDown:
		m.State.MenuIndex = (m.State.MenuIndex + 1) % menuEntries
	case EventConfirm:
		if m.State.MenuIndex == MenuNewNote {
			return EffectPromptTitle
		}
		if m.Notes.Count() > 0 {
			m.State.NoteIndex = 0
			m.State.Mode = ModeNoteList
		}
	case EventExit:
		return EffectQuit
	}
	return EffectNone
}

func (m *Machine) handleNoteList(ev Event) Effect {
	count := m.Notes.Count()
	switch ev {
	case EventBack:
		m.State.Mode = ModeMenu
	case EventUp:
		if count > 0 {
			m.State.NoteIndex = (m.State.NoteIndex - 1 + count) % count
		}
	case EventDown:
		if count > 0 {
			m.State.NoteIndex = (m.State.NoteIndex + 1) % count
		}
	case EventConfirm:
		if m.State.NoteIndex >= 0 {
			m.State.Mode = ModeViewNote
		}
	}
	return EffectNone
}

func (m *Machine) handleViewNote(ev Event) Effect {
	switch ev {
	case EventBack:
		if m.State.NoteIndex >= m.Notes.Count() {
			// Viewing a note that never went through the list view backs
			// out to the menu instead.
			m.State.Mode = ModeMenu
		} else {
			m.State.Mode = ModeNoteList
		}
	case EventConfirm:
		return EffectPromptLine
	}
	return EffectNone
}

// SubmitTitle completes the new-note prompt raised by EffectPromptTitle.
// On success the note is created, persisted as an empty file, and opened
// in the view mode. Rejections keep the user in the menu with no visible
// error.
func (m *Machine) SubmitTitle(title string) {
	if m.State.Mode != ModeMenu {
		return
	}
	idx, err := m.Notes.Create(title, "")
	if err != nil {
		m.Logger.Warn("new note rejected", "title", title, "err", err)
		return
	}
	if err := m.Files.Save(title, ""); err != nil {
		// Memory stays authoritative; the next successful save catches up.
		m.Logger.Warn("could not persist new note", "title", title, "err", err)
	}
	m.State.NoteIndex = idx
	m.State.Mode = ModeViewNote
}

// SubmitLine completes the append prompt raised by EffectPromptLine. A
// passing append is immediately written through to disk; overflow leaves
// the note byte-for-byte unchanged.
func (m *Machine) SubmitLine(line string) {
	if m.State.Mode != ModeViewNote {
		return
	}
	if err := m.Notes.AppendLine(m.State.NoteIndex, line); err != nil {
		m.Logger.Warn("append rejected", "index", m.State.NoteIndex, "err", err)
		return
	}
	n, err := m.Notes.Note(m.State.NoteIndex)
	if err != nil {
		return
	}
	if err := m.Files.Save(n.Title, n.Content); err != nil {
		m.Logger.Warn("could not persist note", "title", n.Title, "err", err)
	}
}

// Selected returns the note under the cursor, if any.
func (m *Machine) Selected() (*model.Note, bool) {
	n, err := m.Notes.Note(m.State.NoteIndex)
	if err != nil {
		return nil, false
	}
	return n, true
}
