package runner

import (
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// Fake is a scripted Runner for tests. Responses are keyed by the full command
// line ("git submodule init"); unscripted commands behave like a missing
// executable. Every call is recorded in order.
type Fake struct {
	Responses map[string]Result
	// Paths maps executable names to the path LookPath reports for them.
	Paths map[string]string

	Calls   []Command
	Lookups []string
}

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{
		Responses: make(map[string]Result),
		Paths:     make(map[string]string),
	}
}

// Succeed scripts commandLine to exit 0 with the given output.
func (f *Fake) Succeed(commandLine string, output string) *Fake {
	f.Responses[commandLine] = Result{Output: []byte(output)}
	return f
}

// Fail scripts commandLine to exit with code.
func (f *Fake) Fail(commandLine string, code int) *Fake {
	f.Responses[commandLine] = Result{ExitCode: code}
	return f
}

// OnPath makes LookPath find name at path.
func (f *Fake) OnPath(name, path string) *Fake {
	f.Paths[name] = path
	return f
}

// Run records c and returns the scripted result.
func (f *Fake) Run(c Command) Result {
	f.Calls = append(f.Calls, c)
	if res, ok := f.Responses[c.String()]; ok {
		return res
	}
	return Result{ExitCode: -1, Err: errors.Wrapf(exec.ErrNotFound, "starting %s", c.Name)}
}

// LookPath returns the scripted path for file.
func (f *Fake) LookPath(file string) (string, error) {
	f.Lookups = append(f.Lookups, file)
	if p, ok := f.Paths[file]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

// CommandLines returns every recorded call rendered with Command.String.
func (f *Fake) CommandLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.String())
	}
	return lines
}

// Ran reports whether a command line starting with prefix was executed.
func (f *Fake) Ran(prefix string) bool {
	for _, line := range f.CommandLines() {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
