// Package hooks holds the two entry points a package-manager lifecycle host calls:
// PreInstall before dependencies are resolved, PostInstall once they are installed.
package hooks

import (
	"github.com/pkg/errors"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
	"github.com/sierkje/letsorganize/src/pkg/preflight"
	"github.com/sierkje/letsorganize/src/pkg/scaffold"
)

// Host is what the lifecycle host reports about itself.
type Host struct {
	Name        string // e.g. Composer
	Version     string
	BranchAlias string // empty when the host has none
}

// Event carries the host metadata and the capabilities handed to a hook.
type Event struct {
	Host Host
	IO   print.Sink
	FS   fs.Filesystem
}

// Gate configures PreInstall.
type Gate struct {
	Minimum string
	Product string
}

// PreInstall refuses to continue when the host is older than the minimum version.
// The returned error wraps a *preflight.IncompatibleError in that case.
func PreInstall(ev Event, gate Gate) (preflight.Result, error) {
	g, err := preflight.NewGate(gate.Minimum, ev.Host.Name, gate.Product)
	if err != nil {
		return preflight.Result{}, errors.Wrap(err, "invalid version requirement")
	}

	result := g.Check(ev.Host.Version, ev.Host.BranchAlias, ev.IO)
	if result.Status == preflight.Fail {
		return result, errors.Wrap(result.Err, "pre-install check failed")
	}
	return result, nil
}

// Scaffold configures PostInstall.
type Scaffold struct {
	Root    string
	Layout  scaffold.Layout
	Options scaffold.Options

	// Strict turns any failed step into an error. Otherwise failures are only
	// reported and the host carries on.
	Strict bool
}

// PostInstall brings the deployment under Root to the shape described by Layout.
func PostInstall(ev Event, cfg Scaffold) (*scaffold.Result, error) {
	if err := cfg.Layout.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid layout")
	}
	if cfg.Options.Retries < 0 {
		return nil, errors.Errorf("retries must not be negative, got %d", cfg.Options.Retries)
	}

	result := scaffold.Ensure(ev.FS, ev.IO, cfg.Layout.Resolve(cfg.Root), cfg.Options)

	if failures := result.Failures(); len(failures) > 0 {
		if cfg.Strict {
			return result, errors.Wrap(result.Err(), "post-install scaffolding failed")
		}
		ev.IO.Warn(len(failures), "scaffolding step(s) failed, continuing")
	}
	return result, nil
}
