package scaffold

import (
	"fmt"
	"strings"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
)

// Step identifies which part of the scaffolding run produced an Outcome.
type Step string

const (
	StepSiteFolder     Step = "site-folder"
	StepTemplate       Step = "template"
	StepLockSiteFolder Step = "lock-site-folder"
	StepRequiredFolder Step = "required-folder"
)

// Status of a single step.
type Status string

const (
	Succeeded Status = "success"
	Skipped   Status = "skipped"
	Failed    Status = "failed"
)

// Filesystem operations named in outcomes and diagnostics.
const (
	OpMkdir = "mkdir"
	OpCopy  = "copy"
	OpChmod = "chmod"
	OpTouch = "touch"
)

// Outcome records what happened to one path. Op is the operation that decided the
// status: the last one on success, the failing one on failure.
type Outcome struct {
	Step   Step
	Op     string
	Path   string
	Mode   fs.Mode
	Status Status
	Err    error

	// Residual describes what a failed step left behind on disk, if anything.
	Residual string
}

func (o Outcome) String() string {
	switch o.Status {
	case Failed:
		msg := fmt.Sprintf("failed to %s %s (mode %s): %v", o.Op, o.Path, o.Mode, o.Err)
		if o.Residual != "" {
			msg += "; " + o.Residual
		}
		return msg
	case Skipped:
		return fmt.Sprintf("skipped %s %s", o.Step, o.Path)
	}
	return fmt.Sprintf("%s %s %s (mode %s)", o.Step, o.Op, o.Path, o.Mode)
}

// Result lists every outcome of a run, in the order the steps ran.
type Result struct {
	Outcomes []Outcome
}

func (r *Result) add(o Outcome) Outcome {
	r.Outcomes = append(r.Outcomes, o)
	return o
}

func (r *Result) filter(keep func(Outcome) bool) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

// Failures returns the outcomes that failed.
func (r *Result) Failures() []Outcome {
	return r.filter(func(o Outcome) bool { return o.Status == Failed })
}

// Created returns the outcomes that brought a new file or folder into existence.
func (r *Result) Created() []Outcome {
	return r.filter(func(o Outcome) bool {
		return o.Status == Succeeded && o.Step != StepLockSiteFolder
	})
}

// Err aggregates every failure into a single error, or returns nil.
func (r *Result) Err() error {
	failures := r.Failures()
	if len(failures) == 0 {
		return nil
	}
	return Failures(failures)
}

// Failures is the error returned when one or more steps of a run failed.
type Failures []Outcome

func (f Failures) Error() string {
	lines := make([]string, len(f))
	for i, o := range f {
		lines[i] = o.String()
	}
	noun := "steps"
	if len(f) == 1 {
		noun = "step"
	}
	return fmt.Sprintf("%d scaffolding %s failed: %s", len(f), noun, strings.Join(lines, "; "))
}
