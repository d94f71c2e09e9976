// Package runner is the single seam through which the bootstrapper starts
// external processes (git, cmake, sudo, package managers).
package runner

import (
	"bytes"
	"io"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"

	"setup-build-env/internal/logger"
)

// Command describes one external invocation.
type Command struct {
	Name string
	Args []string
	// Stream copies the process output to the console while it runs, in
	// addition to capturing it.
	Stream bool
}

// Cmd builds a captured Command.
func Cmd(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// Streamed returns a copy of c whose output is echoed live.
func (c Command) Streamed() Command {
	c.Stream = true
	return c
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is what a finished (or never started) invocation produced.
type Result struct {
	// ExitCode is the process exit status, or -1 when the process never started.
	ExitCode int
	// Output is the combined stdout and stderr.
	Output []byte
	// Err is set when the process could not be started or waited on.
	Err error
}

// OK reports whether the process started and exited with status 0.
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// NotFound reports whether the executable could not be located.
func (r Result) NotFound() bool {
	return r.Err != nil && (errors.Is(r.Err, exec.ErrNotFound) || errors.Is(r.Err, exec.ErrDot))
}

// Runner executes external commands and looks up executables on PATH.
type Runner interface {
	Run(c Command) Result
	LookPath(file string) (string, error)
}

// ExecRunner runs commands with os/exec. Invocations block until the process
// exits; there is no timeout.
type ExecRunner struct {
	// Dir is the working directory for every command. Empty means the
	// current directory of the process.
	Dir string
	// Stdout receives streamed output. Defaults to the logger output.
	Stdout io.Writer
}

// Run executes c and collects its combined output.
func (r ExecRunner) Run(c Command) Result {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = r.Dir
	logger.Debug("[DEBUG] Running command: %s\n", c)

	var buf bytes.Buffer
	var w io.Writer = &buf
	if c.Stream {
		out := r.Stdout
		if out == nil {
			out = logger.Writer()
		}
		w = io.MultiWriter(&buf, out)
	}
	cmd.Stdout = w
	cmd.Stderr = w

	err := cmd.Run()
	res := Result{Output: buf.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			logger.Debug("[DEBUG] %s exited with status %d\nOutput: %s\n", c.Name, res.ExitCode, res.Output)
			return res
		}
		res.ExitCode = -1
		res.Err = errors.Wrapf(err, "starting %s", c.Name)
		logger.Debug("[DEBUG] %v\n", res.Err)
		return res
	}
	return res
}

// LookPath searches PATH for an executable named file.
func (r ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
