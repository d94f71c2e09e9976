package logger

import (
	"bytes"
	"io"
	"testing"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colorized printing functions for the different log levels.
// Each behaves like fmt.Printf but writes to the package output with the level's color.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
	plainColor = color.New(color.Reset)
)

// output is where every log line is written. It defaults to color.Output,
// which handles ANSI translation on Windows consoles.
var output io.Writer = color.Output

// Info logs informational and success messages in green.
func Info(format string, a ...any) {
	_, _ = infoColor.Fprintf(output, format, a...)
}

// Warn logs warnings in bright magenta. Used for soft failures the run survives.
func Warn(format string, a ...any) {
	_, _ = warnColor.Fprintf(output, format, a...)
}

// Error logs error messages in red.
func Error(format string, a ...any) {
	_, _ = errorColor.Fprintf(output, format, a...)
}

// Plain writes uncolored text, e.g. multi-line build instructions.
func Plain(format string, a ...any) {
	_, _ = plainColor.Fprintf(output, format, a...)
}

// Debug logs debug messages in cyan if enabled, otherwise is a no-op.
// It is reassigned by Init.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When disabled, Debug silently ignores its arguments.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = func(format string, a ...any) {
			_, _ = debugColor.Fprintf(output, format, a...)
		}
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// SetOutput redirects all log output to w and returns the previous writer,
// so callers (mostly tests) can restore it.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// Writer returns the current log output. Streamed external command output is
// copied here so it interleaves with the status lines.
func Writer() io.Writer {
	return output
}

// ForTest captures all log output in a buffer for the duration of the test
// and disables colors so assertions see plain text.
func ForTest(t testing.TB) *bytes.Buffer {
	t.Helper()
	prevNoColor := color.NoColor
	color.NoColor = true

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(prev)
		color.NoColor = prevNoColor
	})
	return &buf
}
