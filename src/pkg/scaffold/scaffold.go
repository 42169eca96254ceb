// Package scaffold brings a deployment tree to the shape a web application needs
// to boot: the default site folder, its live configuration files, and the required
// top-level folders. Every step is create-if-absent, so repeated runs converge.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/eapache/go-resiliency.v1/retrier"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
)

// Options tune how filesystem operations are attempted.
type Options struct {
	// Retries is the number of extra attempts for an operation that failed for a
	// reason other than permissions or existence. Zero or less means a single
	// attempt.
	Retries int
	Backoff time.Duration
}

type scaffolder struct {
	fsys    fs.Filesystem
	out     print.Sink
	retrier *retrier.Retrier
	result  *Result
}

// Ensure runs every scaffolding step against layout, whose paths are used as given
// (see Layout.Resolve). A failing step is reported to out and recorded in the
// result; it never stops the steps after it.
func Ensure(fsys fs.Filesystem, out print.Sink, layout Layout, opts Options) *Result {
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	s := &scaffolder{
		fsys:    fsys,
		out:     out,
		retrier: retrier.New(retrier.ConstantBackoff(opts.Retries, opts.Backoff), transientClassifier{}),
		result:  &Result{},
	}

	site := layout.Paths.DefaultSiteFolder

	s.ensureSiteFolder(site, layout.Modes.SiteFolderCreate)
	for _, pair := range layout.Files {
		s.materialize(site, pair, layout.Modes.Template)
	}
	s.lockSiteFolder(site, layout.Modes.SiteFolderLock)
	for _, folder := range layout.RequiredFolders() {
		s.ensureFolder(folder, layout.Marker)
	}

	return s.result
}

func (s *scaffolder) ensureSiteFolder(site string, mode fs.Mode) {
	outcome := Outcome{Step: StepSiteFolder, Op: OpMkdir, Path: site, Mode: mode}
	if s.fsys.Exists(site) {
		outcome.Status = Skipped
		s.result.add(outcome)
		return
	}

	if err := s.try(func() error { return s.fsys.CreateDirectory(site, mode.Perm()) }); err != nil {
		s.fail(outcome, err)
		return
	}
	outcome.Status = Succeeded
	s.result.add(outcome)
	s.out.Info("Created", site, "with chmod", mode)
}

func (s *scaffolder) materialize(site string, pair FilePair, mode fs.Mode) {
	origin := filepath.Join(site, pair.Origin)
	target := filepath.Join(site, pair.Target)
	outcome := Outcome{Step: StepTemplate, Op: OpCopy, Path: target, Mode: mode}

	// live configuration is never overwritten, and a missing template means
	// there is nothing to copy
	if s.fsys.Exists(target) || !s.fsys.Exists(origin) {
		outcome.Status = Skipped
		s.result.add(outcome)
		return
	}

	if err := s.try(func() error { return s.fsys.CopyFile(origin, target) }); err != nil {
		s.fail(outcome, err)
		return
	}
	outcome.Op = OpChmod
	if err := s.try(func() error { return s.fsys.SetPermissions(target, mode.Perm()) }); err != nil {
		s.fail(outcome, err)
		return
	}
	outcome.Status = Succeeded
	s.result.add(outcome)
	s.out.Info("Created a", target, "file with chmod", mode)
}

func (s *scaffolder) lockSiteFolder(site string, mode fs.Mode) {
	outcome := Outcome{Step: StepLockSiteFolder, Op: OpChmod, Path: site, Mode: mode}
	if err := s.try(func() error { return s.fsys.SetPermissions(site, mode.Perm()) }); err != nil {
		s.fail(outcome, err)
		return
	}
	outcome.Status = Succeeded
	s.result.add(outcome)
}

// ensureFolder creates the folder owner-writable first so the marker can be
// placed, then applies the configured mode.
func (s *scaffolder) ensureFolder(folder Folder, marker string) {
	outcome := Outcome{Step: StepRequiredFolder, Op: OpMkdir, Path: folder.Path, Mode: folder.Mode}
	if s.fsys.Exists(folder.Path) {
		outcome.Status = Skipped
		s.result.add(outcome)
		return
	}

	if err := s.try(func() error { return s.fsys.CreateDirectory(folder.Path, fs.PermDirPrivate) }); err != nil {
		s.fail(outcome, err)
		return
	}
	// from here on the folder exists and later runs skip it
	outcome.Op = OpTouch
	if err := s.try(func() error { return s.fsys.Touch(filepath.Join(folder.Path, marker)) }); err != nil {
		outcome.Residual = fmt.Sprintf("left at %s without %s, fix manually", fs.Mode(fs.PermDirPrivate), marker)
		s.fail(outcome, err)
		return
	}
	outcome.Op = OpChmod
	if err := s.try(func() error { return s.fsys.SetPermissions(folder.Path, folder.Mode.Perm()) }); err != nil {
		outcome.Residual = fmt.Sprintf("left at %s, fix manually", fs.Mode(fs.PermDirPrivate))
		s.fail(outcome, err)
		return
	}
	outcome.Status = Succeeded
	s.result.add(outcome)
	s.out.Info("Created", folder.Path, "with chmod", folder.Mode)
}

func (s *scaffolder) try(op func() error) error {
	return s.retrier.Run(op)
}

func (s *scaffolder) fail(outcome Outcome, err error) {
	outcome.Status = Failed
	outcome.Err = err
	s.out.Erro(s.result.add(outcome).String())
}

// transientClassifier gives up straight away on errors a retry cannot fix.
type transientClassifier struct{}

func (transientClassifier) Classify(err error) retrier.Action {
	switch {
	case err == nil:
		return retrier.Succeed
	case os.IsPermission(err), os.IsExist(err), os.IsNotExist(err):
		return retrier.Fail
	}
	return retrier.Retry
}
