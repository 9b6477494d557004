package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadItems opens and decodes the inventory file at path.
// A missing file is reported with an error matching fs.ErrNotExist.
func LoadItems(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	defer f.Close()

	items, err := DecodeItems(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", path, err)
	}
	return items, nil
}

// SaveItems overwrites the inventory file at path with items.
// Every failure matches ErrPersist.
func SaveItems(path string, items []Item) error {
	// Ensure the directory for the inventory file exists.
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: could not create directory for %q: %w", ErrPersist, path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: error opening %q for writing: %w", ErrPersist, path, err)
	}

	if err := EncodeItems(file, items); err != nil {
		file.Close()
		return fmt.Errorf("%w: %q: %w", ErrPersist, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrPersist, path, err)
	}
	return nil
}

// CorruptPath is where a document that failed to load is preserved before being overwritten.
func CorruptPath(path string) string { return path + ".corrupt" }

// preserve copies the file at path to CorruptPath(path). A file that no longer exists needs no copy.
func preserve(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: could not read %q to preserve it: %w", ErrPersist, path, err)
	}
	if err := os.WriteFile(CorruptPath(path), data, 0644); err != nil {
		return fmt.Errorf("%w: could not preserve %q: %w", ErrPersist, path, err)
	}
	return nil
}
