package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pixil98/go-survive/internal/game"
)

const (
	filePrefix = "save_"
	fileSuffix = ".json"
)

// FileStore keeps each slot in its own save_<slot>.json file in a directory.
type FileStore struct {
	path string
}

var _ SlotStore = (*FileStore)(nil)

// NewFileStore prepares a save directory, creating it if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating save directory: %w", game.ErrIO, err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Write(_ context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	if err := atomicWrite(s.filePath(slot), data, 0644); err != nil {
		return fmt.Errorf("%w: %w", game.ErrIO, err)
	}
	return nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
// This prevents partial or empty files if the process is interrupted.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func (s *FileStore) Read(_ context.Context, slot string) ([]byte, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.filePath(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, slotNotFound(slot)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading save: %w", game.ErrIO, err)
	}
	return data, nil
}

func (s *FileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: listing saves: %w", game.ErrIO, err)
	}

	var slots []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		slot := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		if ValidateSlot(slot) != nil {
			continue
		}
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots, nil
}

func (s *FileStore) filePath(slot string) string {
	return filepath.Join(s.path, filePrefix+slot+fileSuffix)
}
