package tui

import (
	"log/slog"

	"mdnotes/internal/app"
	"mdnotes/internal/model"
	"mdnotes/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptTitle
	promptLine
)

// appModel is the Bubble Tea shell around the navigation state machine.
// The machine owns mode and selection; the shell owns terminal concerns
// (window size, the text-entry modal) and maps keys onto abstract events.
type appModel struct {
	machine *app.Machine
	cfgDir  string

	width  int
	height int

	prompt promptKind
	input  textinput.Model
}

func newAppModel(machine *app.Machine, cfgDir string) appModel {
	m := appModel{
		machine: machine,
		cfgDir:  cfgDir,
	}
	m.input = textinput.New()
	m.input.Placeholder = "Note title"
	m.input.CharLimit = model.MaxTitleLen
	m.input.Width = 40
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

// Run loads the notebook from dir and runs the interactive TUI until the
// user exits from the menu.
func Run(dir string, logger *slog.Logger) error {
	applyColorProfilePreference()

	files := store.Store{Dir: dir}
	notes := files.LoadAll(logger)
	machine := app.New(notes, files, logger)

	cfgDir, err := store.ConfigDir()
	if err != nil {
		logger.Warn("no config dir, ui state will not persist", "err", err)
		cfgDir = ""
	}

	m := newAppModel(machine, cfgDir)
	m.restoreUIState()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// restoreUIState reopens the last screen, best-effort. A saved selection
// that no longer exists on disk falls back to the menu so the index
// validity invariant holds.
func (m *appModel) restoreUIState() {
	st, err := store.LoadUIState(m.cfgDir)
	if err != nil || st == nil {
		return
	}
	mode := app.ModeFromString(st.Mode)
	idx := m.machine.Notes.FindByTitle(st.SelectedTitle)
	if mode != app.ModeMenu && idx < 0 {
		return
	}
	m.machine.State.Mode = mode
	m.machine.State.NoteIndex = idx
}

func (m appModel) persistUIState() {
	if m.cfgDir == "" {
		return
	}
	st := &store.UIState{
		Version: 1,
		Mode:    m.machine.State.Mode.String(),
	}
	if n, ok := m.machine.Selected(); ok {
		st.SelectedTitle = n.Title
	}
	if err := store.SaveUIState(m.cfgDir, st); err != nil {
		m.machine.Logger.Warn("could not save ui state", "err", err)
	}
}
