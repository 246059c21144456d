package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const uiStateFileName = "ui_state.json"

// UIState stores small, user-facing UI state for restoring the last screen
// on relaunch. It lives under the user config dir, not the notes dir (any
// regular file in the notes dir would be loaded as a note).
//
// It is intentionally "best effort": callers should tolerate missing or
// invalid data.
type UIState struct {
	Version int `json:"version"`

	// Mode is one of: menu|list|view
	Mode string `json:"mode,omitempty"`

	// SelectedTitle restores the cursor in list/view modes. Titles are
	// stable identifiers here; indexes are not, since load order can
	// change as files come and go.
	SelectedTitle string `json:"selectedTitle,omitempty"`
}

// ConfigDir returns the per-user config dir for UI state and logs.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "mdnotes"), nil
}

func uiStatePath(dir string) string {
	return filepath.Join(dir, uiStateFileName)
}

func LoadUIState(dir string) (*UIState, error) {
	if strings.TrimSpace(dir) == "" {
		return &UIState{Version: 1}, nil
	}
	b, err := os.ReadFile(uiStatePath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &UIState{Version: 1}, nil
		}
		return nil, err
	}
	var st UIState
	if err := json.Unmarshal(b, &st); err != nil {
		// Best-effort; if corrupted, treat as missing.
		return &UIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

func SaveUIState(dir string, st *UIState) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("save ui state: missing dir")
	}
	if st == nil {
		st = &UIState{}
	}
	if st.Version == 0 {
		st.Version = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(uiStatePath(dir), append(b, '\n'), 0o644)
}
