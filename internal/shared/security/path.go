// Package security guards the filesystem paths the CLI writes to.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrPathEscape indicates the resolved path would escape the trusted root directory.
	ErrPathEscape = errors.New("path escapes base directory")
	// ErrInvalidPath indicates an empty or traversal-bearing path.
	ErrInvalidPath = errors.New("invalid path")
)

// ResolveWithin joins the provided path elements under the given base directory and ensures
// the resulting path never traverses outside of that base. The returned path is absolute.
func ResolveWithin(base string, elems ...string) (string, error) {
	if base == "" {
		return "", errors.New("base directory is required")
	}

	cleanBase, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("resolve base path: %w", err)
	}

	target, err := filepath.Abs(filepath.Join(append([]string{cleanBase}, elems...)...))
	if err != nil {
		return "", fmt.Errorf("resolve target path: %w", err)
	}

	rel, err := filepath.Rel(cleanBase, target)
	if err != nil {
		return "", fmt.Errorf("relativize path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, target)
	}

	return target, nil
}

// ResolveOutputPath returns an absolute path for a file the user asked us to
// write. Relative paths must stay under base; absolute paths are accepted as
// long as they carry no traversal segments.
func ResolveOutputPath(base, path string) (string, error) {
	if !IsValidPath(path) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return ResolveWithin(base, path)
}

// IsValidPath checks if a path is valid and does not contain path traversal attempts
func IsValidPath(path string) bool {
	if path == "" {
		return false
	}

	for _, segment := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == os.PathSeparator }) {
		if segment == ".." {
			return false
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	cleanPath := filepath.Clean(absPath)
	return cleanPath != "" && cleanPath != "/"
}
