package print

import (
	"fmt"
	"strings"
)

// Sink is a write-only diagnostics channel with informational, warning and error
// severities. Hooks receive one from the host instead of writing to the terminal
// directly.
type Sink interface {
	Info(a ...interface{})
	Warn(a ...interface{})
	Erro(a ...interface{})
}

// Console is the Sink backed by the package level print functions.
type Console struct{}

func (Console) Info(a ...interface{}) { Info(a...) }
func (Console) Warn(a ...interface{}) { Warn(a...) }
func (Console) Erro(a ...interface{}) { Erro(a...) }

// Recorder is a Sink that keeps every line it receives, grouped by severity.
type Recorder struct {
	Infos    []string
	Warnings []string
	Errors   []string
}

func (r *Recorder) Info(a ...interface{}) { r.Infos = append(r.Infos, line(a)) }
func (r *Recorder) Warn(a ...interface{}) { r.Warnings = append(r.Warnings, line(a)) }
func (r *Recorder) Erro(a ...interface{}) { r.Errors = append(r.Errors, line(a)) }

// Lines returns every recorded line in severity order: infos, warnings, errors.
func (r *Recorder) Lines() []string {
	lines := make([]string, 0, len(r.Infos)+len(r.Warnings)+len(r.Errors))
	lines = append(lines, r.Infos...)
	lines = append(lines, r.Warnings...)
	return append(lines, r.Errors...)
}

func line(a []interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(a...), "\n")
}
