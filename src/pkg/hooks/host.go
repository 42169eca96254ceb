package hooks

import (
	"context"
	"os/exec"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// "Composer version 2.7.1 2024-02-09 15:26:28"
// "Composer version @package_branch_alias_version@ (1.0-dev) 2016-01-01 10:00:00"
var versionLine = regexp.MustCompile(`(?i)\bversion\s+(\S+)(?:\s+\(([^)]+)\))?`)

// ParseVersionOutput reads a version and optional branch alias from the output of
// `<tool> --version`.
func ParseVersionOutput(output string) (version, branchAlias string, err error) {
	for _, line := range strings.Split(output, "\n") {
		m := versionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return m[1], m[2], nil
	}
	return "", "", errors.Errorf("no version found in %q", strings.TrimSpace(output))
}

// DetectHost asks the host binary for its version.
func DetectHost(ctx context.Context, name, binary string) (Host, error) {
	out, err := exec.CommandContext(ctx, binary, "--version", "--no-ansi").Output()
	if err != nil {
		return Host{}, errors.Wrapf(err, "failed to run %s --version", binary)
	}
	version, alias, err := ParseVersionOutput(string(out))
	if err != nil {
		return Host{}, errors.Wrapf(err, "failed to read %s version", binary)
	}
	return Host{Name: name, Version: version, BranchAlias: alias}, nil
}
