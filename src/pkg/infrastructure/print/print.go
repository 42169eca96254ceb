package print

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	isVerbose  = false
	isColoured = false
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	infoStyle  = color.New(color.FgBlack).Add(color.BgYellow)
	warnStyle  = color.New(color.FgBlack).Add(color.BgHiRed)
	erroStyle  = color.New(color.FgRed).Add(color.BgBlack)
)

// SetVerbose activates all the Verb calls
func SetVerbose() {
	isVerbose = true
}

// SetColoured activates ANSI colour codes
func SetColoured() {
	isColoured = true
}

// SetOutput redirects informational output to out and warnings and errors to errOut.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// Verb prints a message only if Verb is set - controlled via the --verbose flag
func Verb(a ...interface{}) {
	if isVerbose {
		Info(a...)
	}
}

// Info is for general purpose messages that are always shown
func Info(a ...interface{}) {
	if isColoured {
		fmt.Fprint(stdout, infoStyle.Sprint("INFO:"), " ", color.WhiteString(fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(stdout, "INFO: ", fmt.Sprintln(a...))
	}
}

// Warn is for warnings that do not prevent the command from finishing
func Warn(a ...interface{}) {
	if isColoured {
		fmt.Fprint(stderr, warnStyle.Sprint("WARN:"), " ", color.YellowString(fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(stderr, "WARN: ", fmt.Sprintln(a...))
	}
}

// Erro is for errors, whether or not they stop the command
func Erro(a ...interface{}) {
	if isColoured {
		fmt.Fprint(stderr, erroStyle.Sprint("ERROR:"), " ", color.RedString(fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(stderr, "ERROR: ", fmt.Sprintln(a...))
	}
}
