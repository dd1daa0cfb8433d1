package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend stores each slot as <dir>/<slot>.yaml.
// Writes go to a temporary file that is renamed over the target, so a
// crash mid-write never leaves a truncated save behind.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a backend rooted at dir. A leading ~ expands to
// the user's home directory.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("save: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	return &FileBackend{dir: dir}, nil
}

// Path returns the file used for slot.
func (b *FileBackend) Path(slot string) string {
	return filepath.Join(b.dir, slot+".yaml")
}

// Write atomically replaces the slot file.
func (b *FileBackend) Write(slot string, data []byte) error {
	path := b.Path(slot)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: cannot create directory %s: %w", ErrIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: cannot create temp file: %w", ErrIO, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: cannot replace %s: %w", ErrIO, path, err)
	}
	return nil
}

// Read returns the slot file contents.
func (b *FileBackend) Read(slot string) ([]byte, error) {
	data, err := os.ReadFile(b.Path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, b.Path(slot))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s: %w", ErrCorruptData, b.Path(slot), err)
	}
	return data, nil
}

var _ Backend = (*FileBackend)(nil)
