package scaffold

import (
	"path/filepath"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
)

// PathConfig maps each logical folder of a deployment to its path. Relative paths
// are resolved against the deployment root.
type PathConfig struct {
	WebRoot            string `json:"web_root"             yaml:"web_root"`
	DefaultSiteFolder  string `json:"default_site_folder"  yaml:"default_site_folder"`
	ConfigSyncFolder   string `json:"config_sync_folder"   yaml:"config_sync_folder"`
	PublicFilesFolder  string `json:"public_files_folder"  yaml:"public_files_folder"`
	PrivateFilesFolder string `json:"private_files_folder" yaml:"private_files_folder"`
	LogFilesFolder     string `json:"log_files_folder"     yaml:"log_files_folder"`
}

// DefaultPaths is the layout of a Drupal project with the web root in web/.
func DefaultPaths() PathConfig {
	return PathConfig{
		WebRoot:            "web",
		DefaultSiteFolder:  "web/sites/default",
		ConfigSyncFolder:   "files/config/sync",
		PublicFilesFolder:  "web/files",
		PrivateFilesFolder: "files/private",
		LogFilesFolder:     "log",
	}
}

// Resolve returns a copy with every relative path joined onto root.
func (p PathConfig) Resolve(root string) PathConfig {
	return PathConfig{
		WebRoot:            resolve(root, p.WebRoot),
		DefaultSiteFolder:  resolve(root, p.DefaultSiteFolder),
		ConfigSyncFolder:   resolve(root, p.ConfigSyncFolder),
		PublicFilesFolder:  resolve(root, p.PublicFilesFolder),
		PrivateFilesFolder: resolve(root, p.PrivateFilesFolder),
		LogFilesFolder:     resolve(root, p.LogFilesFolder),
	}
}

func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, filepath.FromSlash(path))
}

// Folder is one entry of the required folder set.
type Folder struct {
	Path string  `json:"path" yaml:"path"`
	Mode fs.Mode `json:"mode" yaml:"mode"`
}

// DefaultFolders returns the required folders for p, in creation order.
func DefaultFolders(p PathConfig) []Folder {
	return []Folder{
		{p.ConfigSyncFolder, 0o660},
		{p.LogFilesFolder, 0o660},
		{p.PublicFilesFolder, 0o664},
		{p.PrivateFilesFolder, 0o660},
		{filepath.Join(p.WebRoot, "libraries"), 0o664},
		{filepath.Join(p.WebRoot, "modules"), 0o664},
		{filepath.Join(p.WebRoot, "profiles"), 0o664},
		{filepath.Join(p.WebRoot, "themes"), 0o664},
	}
}

// FilePair names a shipped template and the live file created from it. Both are
// file names inside the default site folder.
type FilePair struct {
	Origin string `json:"origin" yaml:"origin"`
	Target string `json:"target" yaml:"target"`
}

func DefaultFiles() []FilePair {
	return []FilePair{
		{Origin: "default.settings.php", Target: "settings.php"},
		{Origin: "default.services.yml", Target: "services.yml"},
	}
}

// Modes holds the permission bits applied to the default site folder and to the
// files materialized inside it.
//
// SiteFolderCreate (0666) and SiteFolderLock (0440) carry no execute bit, so on
// POSIX systems the folder cannot be traversed by anyone but root once they are
// applied. They are kept as the documented values and can be overridden.
type Modes struct {
	SiteFolderCreate fs.Mode `json:"site_folder_create" yaml:"site_folder_create"`
	SiteFolderLock   fs.Mode `json:"site_folder_lock"   yaml:"site_folder_lock"`
	Template         fs.Mode `json:"template"           yaml:"template"`
}

func DefaultModes() Modes {
	return Modes{
		SiteFolderCreate: 0o666,
		SiteFolderLock:   0o440,
		Template:         0o640,
	}
}

// DefaultMarker is placed in every freshly created required folder so version
// control keeps the otherwise empty directory.
const DefaultMarker = ".gitkeep"

// Layout is everything the scaffolder needs to know about a deployment.
type Layout struct {
	Paths   PathConfig `json:"paths"             yaml:"paths"`
	Files   []FilePair `json:"files"             yaml:"files"`
	Folders []Folder   `json:"folders,omitempty" yaml:"folders,omitempty"`
	Modes   Modes      `json:"modes"             yaml:"modes"`
	Marker  string     `json:"marker"            yaml:"marker"`
}

// DefaultLayout leaves Folders empty so they follow whatever Paths end up being.
func DefaultLayout() Layout {
	return Layout{
		Paths:  DefaultPaths(),
		Files:  DefaultFiles(),
		Modes:  DefaultModes(),
		Marker: DefaultMarker,
	}
}

// RequiredFolders returns the explicit folder set, or the defaults derived from
// the layout's paths when none is configured.
func (l Layout) RequiredFolders() []Folder {
	if len(l.Folders) > 0 {
		return l.Folders
	}
	return DefaultFolders(l.Paths)
}

// Resolve anchors every path of the layout at root.
func (l Layout) Resolve(root string) Layout {
	folders := l.RequiredFolders()
	resolved := make([]Folder, len(folders))
	for i, f := range folders {
		resolved[i] = Folder{Path: resolve(root, f.Path), Mode: f.Mode}
	}

	files := make([]FilePair, len(l.Files))
	copy(files, l.Files)

	return Layout{
		Paths:   l.Paths.Resolve(root),
		Files:   files,
		Folders: resolved,
		Modes:   l.Modes,
		Marker:  l.Marker,
	}
}
