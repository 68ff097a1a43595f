package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Loader yields the raw text of a mapping resource. Network access,
// caching and archive extraction are the implementation's concern.
type Loader interface {
	Load(ctx context.Context, resource string) (string, error)
}

// FileLoader reads resources from disk, relative to Dir.
type FileLoader struct {
	Dir string
}

// Load implements Loader.
func (l FileLoader) Load(ctx context.Context, resource string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := resource
	if !filepath.IsAbs(path) && l.Dir != "" {
		path = filepath.Join(l.Dir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", resource, err)
	}

	return string(data), nil
}

// MapLoader serves resources from memory.
type MapLoader map[string]string

// Load implements Loader.
func (l MapLoader) Load(ctx context.Context, resource string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, ok := l[resource]
	if !ok {
		return "", fmt.Errorf("loading %s: %w", resource, os.ErrNotExist)
	}

	return content, nil
}
