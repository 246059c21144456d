package tui

import (
	"strings"

	"mdnotes/internal/app"
	"mdnotes/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// If the prompt is open, route all keys to it so text editing
		// behaves normally (e.g. backspace edits instead of navigating).
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}

		// Terminal interrupt, outside the app's event vocabulary: always
		// honored, unlike the in-app exit which only the menu accepts.
		if msg.String() == "ctrl+c" {
			m.persistUIState()
			return m, tea.Quit
		}

		ev, ok := keyToEvent(msg.String())
		if !ok {
			return m, nil
		}
		switch m.machine.HandleEvent(ev) {
		case app.EffectQuit:
			m.persistUIState()
			return m, tea.Quit
		case app.EffectPromptTitle:
			m.openPrompt(promptTitle)
		case app.EffectPromptLine:
			m.openPrompt(promptLine)
		}
		return m, nil
	}

	return m, nil
}

func keyToEvent(key string) (app.Event, bool) {
	switch key {
	case "up", "k":
		return app.EventUp, true
	case "down", "j":
		return app.EventDown, true
	case "enter":
		return app.EventConfirm, true
	case "esc", "backspace":
		return app.EventBack, true
	case "q":
		return app.EventExit, true
	default:
		return 0, false
	}
}

func (m *appModel) openPrompt(kind promptKind) {
	m.prompt = kind
	switch kind {
	case promptTitle:
		m.input.Placeholder = "Note title"
		m.input.CharLimit = model.MaxTitleLen
	case promptLine:
		m.input.Placeholder = "Add a line"
		m.input.CharLimit = model.MaxContentLen
	}
	m.input.SetValue("")
	m.input.Focus()
}

func (m *appModel) closePrompt() {
	m.prompt = promptNone
	m.input.SetValue("")
	m.input.Blur()
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		// Cancelled: no state change.
		m.closePrompt()
		return m, nil
	case "enter":
		kind := m.prompt
		value := m.input.Value()
		m.closePrompt()
		switch kind {
		case promptTitle:
			m.machine.SubmitTitle(strings.TrimSpace(value))
		case promptLine:
			m.machine.SubmitLine(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
