package cmd

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"setup-build-env/internal/logger"
)

// exitCode ends a command with a non-zero status after the command has
// already printed its own diagnostics.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

// reportError prints err and any hints attached to it.
func reportError(err error) {
	logger.Error("✗ %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		for _, line := range strings.Split(hint, "\n") {
			logger.Warn("  %s\n", line)
		}
	}
}
