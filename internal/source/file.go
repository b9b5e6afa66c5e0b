package source

import (
	"context"
	"fmt"
	"os"
)

// File reads a deck from the local filesystem
type File struct {
	Path string
}

func (f File) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read deck file: %w", err)
	}
	return string(data), nil
}

func (f File) String() string {
	return "file " + f.Path
}
