package config

import (
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sampctl/configor"
	"gopkg.in/yaml.v3"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
	"github.com/sierkje/letsorganize/src/pkg/preflight"
	"github.com/sierkje/letsorganize/src/pkg/scaffold"
)

// ProjectFileName is the base name of the per-project configuration file.
const ProjectFileName = "letsorganize"

// Config represents the configuration of the install hooks for one project
// nolint:lll
type Config struct {
	Tool           string          `json:"tool"            yaml:"tool"            env:"LETSORGANIZE_TOOL"`            // name of the package manager, used in diagnostics
	Product        string          `json:"product"         yaml:"product"         env:"LETSORGANIZE_PRODUCT"`         // name of the project template, used in diagnostics
	MinimumVersion string          `json:"minimum_version" yaml:"minimum_version" env:"LETSORGANIZE_MINIMUM_VERSION"` // oldest package manager version allowed to install
	Strict         bool            `json:"strict"          yaml:"strict"          env:"LETSORGANIZE_STRICT"`          // fail post-install when any scaffolding step fails
	Retries        int             `json:"retries"         yaml:"retries"         env:"LETSORGANIZE_RETRIES"`         // extra attempts for transient filesystem errors
	Layout         scaffold.Layout `json:"layout"          yaml:"layout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tool:           preflight.DefaultTool,
		Product:        preflight.DefaultProduct,
		MinimumVersion: preflight.DefaultMinimum,
		Layout:         scaffold.DefaultLayout(),
	}
}

// Validate checks a fully merged configuration.
func (cfg Config) Validate() error {
	if cfg.Retries < 0 {
		return errors.Errorf("retries must not be negative, got %d", cfg.Retries)
	}
	return errors.Wrap(cfg.Layout.Validate(), "invalid layout")
}

// ProjectFiles lists the candidate project configuration files in root.
func ProjectFiles(root string) []string {
	return []string{
		filepath.Join(root, ProjectFileName+".json"),
		filepath.Join(root, ProjectFileName+".yaml"),
	}
}

func globalFiles(configDir string) []string {
	return []string{
		filepath.Join(configDir, "config.json"),
		filepath.Join(configDir, "config.yaml"),
	}
}

// Load builds the configuration for the project in root. The project file wins
// over the user's global file in configDir, which wins over the defaults. An
// empty configDir skips the global file.
func Load(root, configDir string) (cfg *Config, err error) {
	err = godotenv.Load(filepath.Join(root, ".env"))
	if err != nil && !os.IsNotExist(err) {
		print.Warn("Failed to load .env:", err)
	}

	cfg = new(Config)

	project, err := loadFile(ProjectFiles(root))
	if err != nil {
		return nil, err
	}
	if project != nil {
		*cfg = *project
	}

	if configDir != "" {
		var global *Config
		global, err = loadFile(globalFiles(configDir))
		if err != nil {
			return nil, err
		}
		if global != nil {
			if err = mergo.Merge(cfg, *global); err != nil {
				return nil, errors.Wrap(err, "failed to merge global configuration")
			}
		}
	}

	if err = mergo.Merge(cfg, Default()); err != nil {
		return nil, errors.Wrap(err, "failed to apply default configuration")
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	print.Verb("Using configuration:", pretty.Sprint(cfg))

	return cfg, nil
}

// loadFile decodes the first existing file out of candidates, or returns nil when
// there is none.
func loadFile(candidates []string) (*Config, error) {
	found := ""
	for _, file := range candidates {
		if !fs.Exists(file) {
			continue
		}
		if found != "" {
			return nil, errors.Errorf("found both %s and %s; please keep only one configuration file", found, file)
		}
		found = file
	}
	if found == "" {
		print.Verb("No configuration file among", candidates)
		return nil, nil
	}

	cfg := new(Config)
	cnfgr := configor.New(&configor.Config{
		EnvironmentPrefix:    "LETSORGANIZE",
		ErrorOnUnmatchedKeys: true,
	})
	if err := cnfgr.Load(cfg, found); err != nil {
		return nil, errors.Wrapf(err, "failed to load configuration from %s", found)
	}
	print.Verb("Loaded configuration from", found)
	return cfg, nil
}

// WriteConfig writes cfg as the project configuration file of root in the given
// format ("json" or "yaml") and returns the path written.
func WriteConfig(root string, cfg Config, format string) (path string, err error) {
	path = filepath.Join(root, ProjectFileName+"."+format)

	switch format {
	case "json":
		err = fs.WriteJSONAtomic(path, cfg, fs.PermDirShared, fs.PermFileShared)
	case "yaml":
		var contents []byte
		contents, err = yaml.Marshal(cfg)
		if err != nil {
			return "", errors.Wrap(err, "failed to encode configuration")
		}
		err = fs.WriteFileAtomic(path, contents, fs.PermDirShared, fs.PermFileShared)
	default:
		return "", errors.Errorf("unsupported configuration format %q", format)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to write configuration file %s", path)
	}
	return path, nil
}
