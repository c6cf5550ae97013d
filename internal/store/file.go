package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
)

// ErrStorageRead marks a data file that exists but could not be decoded.
var ErrStorageRead = errors.New("storage read failure")

// FileStore reads and writes the roster document as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore constructs a FileStore for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path exposes the data file location.
func (f *FileStore) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Load returns the stored document. A missing file yields an empty document
// and no error; an unreadable one yields an empty document and ErrStorageRead.
func (f *FileStore) Load() (domain.Document, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return domain.NewDocument(), fmt.Errorf("create data dir: %w", err)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewDocument(), nil
		}
		return domain.NewDocument(), fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.NewDocument(), fmt.Errorf("%w: decode %s: %v", ErrStorageRead, f.path, err)
	}
	doc.Ensure()
	return doc, nil
}

// Save overwrites the data file through a temp file and rename.
func (f *FileStore) Save(doc domain.Document) error {
	doc.Ensure()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
