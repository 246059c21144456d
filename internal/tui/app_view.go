package tui

import (
	"fmt"
	"strings"

	"mdnotes/internal/app"

	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	header := styleAppTitle.Render("mdnotes")

	var body, help string
	switch m.machine.State.Mode {
	case app.ModeMenu:
		body = m.viewMenu()
		help = "up/down: move  enter: select  q: quit"
	case app.ModeNoteList:
		body = m.viewNoteList()
		help = "up/down: move  enter: view  esc: back"
	case app.ModeViewNote:
		body = m.viewNote()
		help = "enter: add line  esc: back"
	}

	screen := strings.Join([]string{header, body, styleHelp.Render(help)}, "\n\n")
	if m.prompt != promptNone {
		screen += "\n\n" + m.viewPrompt()
	}
	return screen
}

func (m appModel) viewMenu() string {
	options := []string{"New Note", "View Notes"}
	rows := make([]string, len(options))
	for i, opt := range options {
		st := styleText
		prefix := "  "
		if m.machine.State.MenuIndex == i {
			st = styleSelected
			prefix = "> "
		}
		rows[i] = st.Render(prefix + opt)
	}
	return strings.Join(rows, "\n")
}

func (m appModel) viewNoteList() string {
	count := m.machine.Notes.Count()
	if count == 0 {
		return styleMuted.Render("No notes yet.")
	}
	rows := make([]string, 0, count)
	for i := 0; i < count; i++ {
		n, err := m.machine.Notes.Note(i)
		if err != nil {
			continue
		}
		st := styleText
		prefix := "  "
		if m.machine.State.NoteIndex == i {
			st = styleSelected
			prefix = "> "
		}
		rows = append(rows, st.Render(truncateToWidth(prefix+n.Title, m.contentWidth())))
	}
	return strings.Join(rows, "\n")
}

func (m appModel) viewNote() string {
	n, ok := m.machine.Selected()
	if !ok {
		return styleMuted.Render("No note selected.")
	}
	content := styleMuted.Render("(empty)")
	if n.Content != "" {
		content = styleText.Render(n.Content)
	}
	return strings.Join([]string{
		styleNoteTitle.Render(n.Title),
		content,
		"",
		styleMuted.Render(fmt.Sprintf("%d bytes free", n.FreeBytes())),
	}, "\n")
}

func (m appModel) viewPrompt() string {
	label := "Enter note title"
	if m.prompt == promptLine {
		label = "Add a line to note"
	}
	return stylePromptBox.Render(strings.Join([]string{
		styleNoteTitle.Render(label),
		m.input.View(),
		styleMuted.Render("enter: ok  esc: cancel"),
	}, "\n"))
}

func (m appModel) contentWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func truncateToWidth(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}
