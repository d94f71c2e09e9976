// Package sdk checks for, and helps install, the vendored Steamworks SDK.
package sdk

import (
	"path/filepath"

	"github.com/spf13/afero"

	"setup-build-env/internal/config"
	"setup-build-env/internal/logger"
	"setup-build-env/internal/platform"
)

// Checker verifies the SDK root and the per-platform library manifest.
type Checker struct {
	Fs afero.Fs
	// Dir is the project directory a relative SDK root is resolved against.
	Dir string
	SDK config.SDK
}

// Root returns the resolved SDK root directory.
func (c Checker) Root() string {
	return ResolveRoot(c.Dir, c.SDK.Root)
}

// ResolveRoot joins a relative SDK root onto dir.
func ResolveRoot(dir, root string) string {
	if filepath.IsAbs(root) {
		return root
	}
	return filepath.Join(dir, root)
}

// RootExists reports whether the SDK root is an existing directory.
func (c Checker) RootExists() bool {
	ok, err := afero.DirExists(c.Fs, c.Root())
	return err == nil && ok
}

// Missing returns the manifest entries for p that do not exist under the
// root, in manifest order. Present files are never included.
func (c Checker) Missing(p platform.Platform) []string {
	var missing []string
	for _, rel := range c.SDK.Manifest[p] {
		path := filepath.Join(c.Root(), filepath.FromSlash(rel))
		if ok, err := afero.Exists(c.Fs, path); err != nil || !ok {
			logger.Debug("[DEBUG] SDK file missing: %s\n", path)
			missing = append(missing, rel)
		}
	}
	return missing
}

// Check reports whether the SDK is fully in place for p, printing a warning
// with acquisition instructions when it is not.
func (c Checker) Check(p platform.Platform) bool {
	if !c.RootExists() {
		logger.Warn("⚠ Steamworks SDK not found\n")
		if c.SDK.AcquireURL != "" {
			logger.Warn("  Download the Steamworks SDK from %s\n", c.SDK.AcquireURL)
		}
		logger.Warn("  and extract it into the '%s' directory at the project root\n", c.SDK.Root)
		logger.Warn("  (or run: setup-build-env sdk unpack <archive>)\n")
		return false
	}

	missing := c.Missing(p)
	if len(missing) > 0 {
		logger.Warn("⚠ Steamworks libraries missing for the current platform (%s):\n", p)
		for _, rel := range missing {
			logger.Warn("  - %s\n", rel)
		}
		return false
	}

	logger.Info("✓ Steamworks SDK configured\n")
	return true
}
