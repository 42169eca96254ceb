package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Validate rejects layouts the scaffolder cannot act on.
func (l Layout) Validate() error {
	if strings.TrimSpace(l.Paths.DefaultSiteFolder) == "" {
		return errors.New("default site folder path is empty")
	}
	if !isBaseName(l.Marker) {
		return errors.Errorf("marker %q must be a plain file name", l.Marker)
	}

	for i, pair := range l.Files {
		if !isBaseName(pair.Origin) || !isBaseName(pair.Target) {
			return errors.Errorf("file pair %d (%q -> %q) must name files inside the site folder", i, pair.Origin, pair.Target)
		}
		if pair.Origin == pair.Target {
			return errors.Errorf("file pair %d copies %q onto itself", i, pair.Origin)
		}
	}

	seen := make(map[string]bool)
	for i, folder := range l.RequiredFolders() {
		if strings.TrimSpace(folder.Path) == "" {
			return errors.Errorf("required folder %d has an empty path", i)
		}
		clean := filepath.Clean(folder.Path)
		if seen[clean] {
			return errors.Errorf("required folder %q is listed twice", folder.Path)
		}
		seen[clean] = true
	}

	return nil
}

func isBaseName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
