// Package storage provides the durable key-value blob the store mirrors
// itself into. The store treats it as an opaque byte sink; the default
// implementation is a single JSON file in the user's config directory.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-ramadan/internal/config"
)

// Blob is the persistence contract consumed by the store.
// Load returns (nil, nil) when no blob has ever been saved.
type Blob interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// FileBlob persists the blob as a single file with owner-only permissions.
type FileBlob struct {
	path string
}

// NewFileBlob creates a FileBlob at an explicit path, creating parent
// directories as needed.
func NewFileBlob(path string) (*FileBlob, error) {
	if err := os.MkdirAll(filepath.Dir(path), config.DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return &FileBlob{path: path}, nil
}

// NewDefaultFileBlob places the blob under the platform config directory,
// e.g. ~/.config/<AppID>/state.json on Linux.
func NewDefaultFileBlob() (*FileBlob, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrConfigDir, err)
	}
	return NewFileBlob(filepath.Join(dir, config.AppID, config.StateFileName))
}

// Path returns the backing file location.
func (f *FileBlob) Path() string {
	return f.path
}

// Load reads the persisted blob. A missing file is not an error: it simply
// means a fresh start.
func (f *FileBlob) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug(config.MsgStateFresh,
			config.LogKeyComponent, config.CompStorage,
			config.LogKeyFile, f.path,
		)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStateRead, err)
	}
	return data, nil
}

// Save atomically replaces the blob. Writing to a temp file first avoids a
// torn state file if the process dies mid-write.
func (f *FileBlob) Save(data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStateWrite, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStateWrite, err)
	}
	return nil
}

// Clear removes the blob entirely. Clearing an absent blob is a no-op.
func (f *FileBlob) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", config.ErrStateWrite, err)
	}
	slog.Info(config.MsgStateCleared,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, f.path,
	)
	return nil
}
