package sources

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File reads collections from JSON files in a data directory.
type File struct {
	Dir string
}

// NewFile returns a File source rooted at dir.
func NewFile(dir string) *File {
	return &File{Dir: dir}
}

// Path resolves a collection name to a file path. A name without an
// extension gets ".json"; absolute names are used as is.
func (f *File) Path(name string) string {
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(f.Dir, name)
}

// Fetch reads the whole file for name.
func (f *File) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := f.Path(name)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}
