package app

// Mode is the current screen of the navigation state machine. It gates
// which input events are meaningful; anything unlisted for a mode is a
// no-op.
type Mode int

const (
	ModeMenu Mode = iota
	ModeNoteList
	ModeViewNote
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeNoteList:
		return "list"
	case ModeViewNote:
		return "view"
	default:
		return "unknown"
	}
}

// ModeFromString is the inverse of Mode.String, used when restoring saved
// UI state. Unknown strings fall back to the menu.
func ModeFromString(s string) Mode {
	switch s {
	case "list":
		return ModeNoteList
	case "view":
		return ModeViewNote
	default:
		return ModeMenu
	}
}

// Event is the abstract input vocabulary. The front end maps key presses
// onto these; the machine never sees raw keys.
type Event int

const (
	EventUp Event = iota
	EventDown
	EventConfirm
	EventBack
	EventExit
)

// Effect is what the machine asks the front end to do after a transition.
// Text entry is an external collaborator, so the machine raises a prompt
// effect and the front end later calls SubmitTitle/SubmitLine (or nothing,
// on cancel).
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	EffectPromptTitle
	EffectPromptLine
)

// Menu entries, in display order.
const (
	MenuNewNote = iota
	MenuViewNotes
	menuEntries
)

// State is the full navigation state: current mode plus the selection
// cursors the machine owns exclusively. NoteIndex is -1 when no note is
// selected, otherwise a valid notebook index.
type State struct {
	Mode      Mode
	MenuIndex int
	NoteIndex int
}

func NewState() State {
	return State{Mode: ModeMenu, MenuIndex: 0, NoteIndex: -1}
}
