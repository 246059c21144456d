package tui

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mdnotes/internal/app"
	"mdnotes/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestModel(t *testing.T) appModel {
	t.Helper()
	files := store.Store{Dir: t.TempDir()}
	machine := app.New(store.NewNotebook(), files, nil)
	return newAppModel(machine, t.TempDir())
}

func sendKey(t *testing.T, m appModel, key tea.KeyMsg) appModel {
	t.Helper()
	next, _ := m.Update(key)
	nm, ok := next.(appModel)
	if !ok {
		t.Fatalf("Update returned %T; want appModel", next)
	}
	return nm
}

func typeString(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	return sendKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestMenuNavigationKeys(t *testing.T) {
	m := newTestModel(t)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.machine.State.MenuIndex != 1 {
		t.Fatalf("MenuIndex after down = %d; want 1", m.machine.State.MenuIndex)
	}
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.machine.State.MenuIndex != 0 {
		t.Fatalf("MenuIndex after up = %d; want 0", m.machine.State.MenuIndex)
	}
}

func TestEnterOnNewNoteOpensTitlePrompt(t *testing.T) {
	m := newTestModel(t)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt != promptTitle {
		t.Fatalf("prompt = %v; want promptTitle", m.prompt)
	}
	// The machine must not have left the menu while the prompt is open.
	if m.machine.State.Mode != app.ModeMenu {
		t.Fatalf("mode while prompting = %v; want menu", m.machine.State.Mode)
	}
}

func TestTitlePromptCreatesNoteAndFile(t *testing.T) {
	m := newTestModel(t)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeString(t, m, "Groceries")
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.prompt != promptNone {
		t.Fatalf("prompt still open after enter")
	}
	if m.machine.State.Mode != app.ModeViewNote {
		t.Fatalf("mode = %v; want view", m.machine.State.Mode)
	}
	if m.machine.Notes.Count() != 1 {
		t.Fatalf("Count = %d; want 1", m.machine.Notes.Count())
	}
	if _, err := os.Stat(filepath.Join(m.machine.Files.Dir, "Groceries")); err != nil {
		t.Fatalf("note file missing: %v", err)
	}
}

func TestTitlePromptEscCancels(t *testing.T) {
	m := newTestModel(t)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeString(t, m, "never created")
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.prompt != promptNone {
		t.Fatalf("prompt still open after esc")
	}
	if m.machine.Notes.Count() != 0 {
		t.Fatalf("cancelled prompt created a note")
	}
	if m.machine.State.Mode != app.ModeMenu {
		t.Fatalf("mode = %v; want menu", m.machine.State.Mode)
	}
}

func TestLinePromptAppendsToSelectedNote(t *testing.T) {
	m := newTestModel(t)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeString(t, m, "log")
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// In the note view: enter opens the line prompt.
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt != promptLine {
		t.Fatalf("prompt = %v; want promptLine", m.prompt)
	}
	m = typeString(t, m, "first line")
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	n, ok := m.machine.Selected()
	if !ok {
		t.Fatalf("no selected note")
	}
	if n.Content != "first line" {
		t.Fatalf("content = %q; want %q", n.Content, "first line")
	}
}

func TestQKeyQuitsOnlyFromMenu(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.machine.Notes.Create("a", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	// From the list, q is ignored.
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // -> list
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(appModel)
	if cmd != nil {
		t.Fatalf("q outside the menu produced a command")
	}
	if m.machine.State.Mode != app.ModeNoteList {
		t.Fatalf("mode = %v; want list", m.machine.State.Mode)
	}

	// Back to the menu, q quits.
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q in menu did not quit")
	}
}

func TestViewRendersCurrentMode(t *testing.T) {
	m := newTestModel(t)

	if out := m.View(); !strings.Contains(out, "New Note") || !strings.Contains(out, "View Notes") {
		t.Fatalf("menu view missing options:\n%s", out)
	}

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeString(t, m, "Groceries")
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if out := m.View(); !strings.Contains(out, "Groceries") {
		t.Fatalf("note view missing title:\n%s", out)
	}
}

func TestUIStateRestoreFallsBackWhenNoteMissing(t *testing.T) {
	files := store.Store{Dir: t.TempDir()}
	machine := app.New(store.NewNotebook(), files, nil)
	cfgDir := t.TempDir()
	if err := store.SaveUIState(cfgDir, &store.UIState{Version: 1, Mode: "view", SelectedTitle: "gone"}); err != nil {
		t.Fatalf("SaveUIState: %v", err)
	}

	m := newAppModel(machine, cfgDir)
	m.restoreUIState()
	if m.machine.State.Mode != app.ModeMenu {
		t.Fatalf("restored mode = %v; want menu fallback", m.machine.State.Mode)
	}
	if m.machine.State.NoteIndex != -1 {
		t.Fatalf("restored NoteIndex = %d; want -1", m.machine.State.NoteIndex)
	}
}

func TestUIStateRestoreReopensNote(t *testing.T) {
	files := store.Store{Dir: t.TempDir()}
	if err := files.Save("keep", "body"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	machine := app.New(files.LoadAll(discardLogger()), files, nil)
	cfgDir := t.TempDir()
	if err := store.SaveUIState(cfgDir, &store.UIState{Version: 1, Mode: "view", SelectedTitle: "keep"}); err != nil {
		t.Fatalf("SaveUIState: %v", err)
	}

	m := newAppModel(machine, cfgDir)
	m.restoreUIState()
	if m.machine.State.Mode != app.ModeViewNote {
		t.Fatalf("restored mode = %v; want view", m.machine.State.Mode)
	}
	n, ok := m.machine.Selected()
	if !ok || n.Title != "keep" {
		t.Fatalf("restored selection = %v, %v; want note %q", n, ok, "keep")
	}
}
