// Package platform maps the host operating system onto the closed set of
// targets the build environment supports.
package platform

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// Platform identifies a supported build target.
type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	MacOS   Platform = "macos"
)

// All lists every supported platform in a stable order.
func All() []Platform {
	return []Platform{Windows, Linux, MacOS}
}

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// Title returns the display name of the platform.
func (p Platform) Title() string {
	switch p {
	case Windows:
		return "Windows"
	case Linux:
		return "Linux"
	case MacOS:
		return "macOS"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case Windows, Linux, MacOS:
		return true
	default:
		return false
	}
}

// ErrUnsupported is matched by every UnsupportedPlatformError via errors.Is.
var ErrUnsupported = errors.New("unsupported platform")

// UnsupportedPlatformError reports an OS identity outside the supported set.
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported operating system: %q", e.OS)
}

// Is lets errors.Is(err, ErrUnsupported) match.
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupported
}

// Detect maps an OS identity string (as reported by runtime.GOOS) to a Platform.
// Matching is case-insensitive and exact; "darwin" maps to MacOS.
func Detect(goos string) (Platform, error) {
	switch strings.ToLower(goos) {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "darwin":
		return MacOS, nil
	default:
		return "", &UnsupportedPlatformError{OS: goos}
	}
}

// Current detects the platform of the running process.
func Current() (Platform, error) {
	return Detect(runtime.GOOS)
}

// Parse accepts a platform identifier as written by users ("macos") or as an OS
// identity ("darwin").
func Parse(s string) (Platform, error) {
	if p := Platform(strings.ToLower(s)); p.Valid() {
		return p, nil
	}
	return Detect(s)
}
