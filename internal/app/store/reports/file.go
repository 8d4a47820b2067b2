package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File writes reports to the local filesystem. Missing parent directories
// are created.
type File struct{}

// NewFile returns a filesystem writer.
func NewFile() *File {
	return &File{}
}

// Write truncates destination and writes content to it.
func (f *File) Write(ctx context.Context, content, destination string) Outcome {
	if err := ctx.Err(); err != nil {
		return failed(destination, err)
	}
	if destination == "" {
		return failed(destination, fmt.Errorf("write report: empty destination"))
	}
	if dir := filepath.Dir(destination); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return failed(destination, fmt.Errorf("create %s: %w", dir, err))
		}
	}
	if err := os.WriteFile(destination, []byte(content), 0o644); err != nil {
		return failed(destination, fmt.Errorf("write %s: %w", destination, err))
	}
	return succeeded(destination, len(content))
}
