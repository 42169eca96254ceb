package preflight

import (
	"fmt"

	"github.com/pkg/errors"
)

// IncompatibleError means the tool is older than the minimum, or its version could
// not be read at all.
type IncompatibleError struct {
	Tool    string
	Version string
	Minimum string
	Cause   error // set when Version did not parse
}

func (e *IncompatibleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s version %q is not a semantic version (minimum %s): %v", e.Tool, e.Version, e.Minimum, e.Cause)
	}
	return fmt.Sprintf("%s version %s is older than the required %s", e.Tool, e.Version, e.Minimum)
}

// IsIncompatible reports whether err is, or wraps, an IncompatibleError.
func IsIncompatible(err error) bool {
	_, ok := errors.Cause(err).(*IncompatibleError)
	return ok
}
