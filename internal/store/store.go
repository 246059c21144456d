package store

import (
	"log/slog"
	"os"
	"path/filepath"

	"mdnotes/internal/model"
)

// Store is the durable mirror of a Notebook: one file per note inside Dir,
// filename = title, content = the raw note bytes. Saves are full truncating
// overwrites; the on-disk file always reflects current in-memory content.
type Store struct {
	Dir string
}

// DiscoverDir walks up from start looking for an existing .mdnotes dir.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".mdnotes")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir resolves the notes dir: a discovered .mdnotes in the cwd's
// ancestry, else .mdnotes under the cwd.
func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, ".mdnotes"), nil
}

// Ensure creates the notes dir if absent. Idempotent.
func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) notePath(title string) string {
	return filepath.Join(s.Dir, title)
}

// LoadAll scans the notes dir and builds the in-memory notebook: one note
// per regular file, title = filename, in filename order (os.ReadDir sorts,
// which keeps display order deterministic across platforms). Loading stops
// once the notebook is full; remaining files are ignored, not errors.
//
// Filesystem failures degrade to an empty or partial notebook rather than
// aborting startup. They are absorbed here, but logged so the degradation
// stays observable.
func (s Store) LoadAll(logger *slog.Logger) *Notebook {
	nb := NewNotebook()
	if err := s.Ensure(); err != nil {
		logger.Warn("notes dir unavailable, continuing in memory only", "dir", s.Dir, "err", err)
		return nb
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		logger.Warn("cannot list notes dir, continuing in memory only", "dir", s.Dir, "err", err)
		return nb
	}
	for _, entry := range entries {
		if nb.Count() >= MaxNotes {
			logger.Warn("note limit reached, ignoring remaining files", "dir", s.Dir, "limit", MaxNotes)
			break
		}
		if !entry.Type().IsRegular() {
			continue
		}
		b, err := os.ReadFile(filepath.Join(s.Dir, entry.Name()))
		if err != nil {
			logger.Warn("skipping unreadable note file", "file", entry.Name(), "err", err)
			continue
		}
		title := model.Truncate(entry.Name(), model.TitleCap)
		content := model.Truncate(string(b), model.ContentCap)
		if _, err := nb.Create(title, content); err != nil {
			// Truncated filenames can collide; the first file wins.
			logger.Warn("skipping note file", "file", entry.Name(), "err", err)
		}
	}
	return nb
}

// Save writes the full content to the file named title, truncating any
// previous version. Empty content still produces an (empty) file. Writes
// are not atomic across crashes; the in-memory notebook stays authoritative
// until the next successful save.
func (s Store) Save(title, content string) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	return os.WriteFile(s.notePath(title), []byte(content), 0o644)
}
