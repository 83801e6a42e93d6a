package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

// FileAdapter stores the session as a single JSON record on disk,
// holding the session fields verbatim.
type FileAdapter struct {
	path string
}

// NewFileAdapter creates an adapter backed by the file at path.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Load reads the persisted session. A missing file is a normal first
// run and comes back as an empty session; a corrupt file is reported so
// the Store can log it, but also yields an empty session.
func (a *FileAdapter) Load() (domain.Session, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Session{}, nil
		}
		return domain.Session{}, fmt.Errorf("read session file: %w", err)
	}
	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.Session{}, fmt.Errorf("parse session file: %w", err)
	}
	return s, nil
}

// Save writes the session atomically, creating the parent directory on
// first use. File mode 0600: the record holds a live credential.
func (a *FileAdapter) Save(s domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	tmp := a.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, a.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
