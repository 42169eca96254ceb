// Package preflight checks that the package-manager tool driving an install is new
// enough before any dependency is fetched.
package preflight

import (
	"regexp"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
)

const (
	// PlaceholderVersion and PlaceholderBranchAlias are what a tool built from an
	// unreleased checkout reports instead of a real version.
	PlaceholderVersion     = "@package_version@"
	PlaceholderBranchAlias = "@package_branch_alias_version@"

	DefaultMinimum = "1.0.0"
	DefaultTool    = "Composer"
	DefaultProduct = "Let's Organize"
)

// a dev-channel build reports its git revision, which carries no ordering
var revisionPattern = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)

// Status is the outcome of a version check.
type Status int

const (
	Pass Status = iota
	PassWithWarning
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case PassWithWarning:
		return "pass-with-warning"
	case Fail:
		return "fail"
	}
	return "unknown"
}

// Result describes a single version check.
type Result struct {
	Status   Status
	Reported string // what the tool said about itself
	Version  string // what was compared, after branch alias substitution
	Minimum  string
	Err      error // non-nil only when Status is Fail
}

// Gate compares a tool version against a fixed minimum.
type Gate struct {
	Tool    string
	Product string
	Minimum *semver.Version
}

// NewGate builds a Gate. An empty tool or product name falls back to the defaults.
func NewGate(minimum, tool, product string) (*Gate, error) {
	minVersion, err := semver.NewVersion(minimum)
	if err != nil {
		return nil, errors.Wrapf(err, "minimum version %q is not a semantic version", minimum)
	}
	if tool == "" {
		tool = DefaultTool
	}
	if product == "" {
		product = DefaultProduct
	}
	return &Gate{Tool: tool, Product: product, Minimum: minVersion}, nil
}

// CheckToolVersion runs a default gate for the given minimum. An empty branchAlias
// means the tool reported none.
func CheckToolVersion(reported, branchAlias, minimum string, out print.Sink) (Result, error) {
	gate, err := NewGate(minimum, "", "")
	if err != nil {
		return Result{}, err
	}
	return gate.Check(reported, branchAlias, out), nil
}

// Check inspects the reported version and writes diagnostics to out. It never ends
// the process; callers turn a Fail result into a non-zero exit.
func (g *Gate) Check(reported, branchAlias string, out print.Sink) Result {
	result := Result{
		Reported: reported,
		Version:  reported,
		Minimum:  g.Minimum.Original(),
	}

	if revisionPattern.MatchString(result.Version) {
		result.Version = branchAlias
	}

	if result.Version == PlaceholderVersion || result.Version == PlaceholderBranchAlias {
		out.Warn("You are running a development version of " + g.Tool + ". " +
			"If you experience problems, please update " + g.Tool + " to the latest stable version.")
		result.Status = PassWithWarning
		return result
	}

	version, err := semver.NewVersion(result.Version)
	if err != nil {
		result.Status = Fail
		result.Err = &IncompatibleError{Tool: g.Tool, Version: result.Version, Minimum: result.Minimum, Cause: err}
		out.Erro(g.Product, "could not read", g.Tool, "version", quote(result.Version), "as a semantic version.",
			"Please update your", g.Tool, "to version", result.Minimum, "or higher before continuing.")
		return result
	}

	if version.LessThan(g.Minimum) {
		result.Status = Fail
		result.Err = &IncompatibleError{Tool: g.Tool, Version: result.Version, Minimum: result.Minimum}
		out.Erro(g.Product, "requires", g.Tool, "version", result.Minimum, "or higher, found", result.Version+".",
			"Please update your", g.Tool, "before continuing.")
		return result
	}

	result.Status = Pass
	return result
}

func quote(s string) string {
	return `"` + s + `"`
}
