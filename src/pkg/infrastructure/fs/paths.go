package fs

import (
	"os"
	"path/filepath"
)

// MustAbs wraps filepath.Abs and panics on error.
func MustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}

// Rel makes a path relative to base. If it fails, it returns the original path.
func Rel(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}

// Exists reports whether path can be stat'ed. Anything that cannot be inspected,
// including entries below a directory without search permission, counts as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
