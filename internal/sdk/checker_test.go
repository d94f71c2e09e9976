package sdk

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setup-build-env/internal/config"
	"setup-build-env/internal/logger"
	"setup-build-env/internal/platform"
)

func newChecker(t *testing.T, files ...string) Checker {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("/proj", filepath.FromSlash(f)), []byte("x"), 0o644))
	}
	return Checker{Fs: fs, Dir: "/proj", SDK: config.Default().SDK}
}

func TestCheck_RootMissing(t *testing.T) {
	buf := logger.ForTest(t)
	c := newChecker(t)

	assert.False(t, c.RootExists())
	assert.False(t, c.Check(platform.Linux))
	assert.Contains(t, buf.String(), "⚠ Steamworks SDK not found")
	assert.Contains(t, buf.String(), "https://partner.steamgames.com/")
	assert.Contains(t, buf.String(), "'steamworks'")
}

func TestCheck_AllPresent(t *testing.T) {
	buf := logger.ForTest(t)
	c := newChecker(t,
		"steamworks/redistributable_bin/win64/steam_api64.lib",
		"steamworks/redistributable_bin/win64/steam_api64.dll",
	)

	assert.True(t, c.Check(platform.Windows))
	assert.Contains(t, buf.String(), "✓ Steamworks SDK configured")
}

func TestCheck_PartiallyPresent(t *testing.T) {
	buf := logger.ForTest(t)
	c := newChecker(t, "steamworks/redistributable_bin/win64/steam_api64.dll")

	assert.False(t, c.Check(platform.Windows))
	assert.Contains(t, buf.String(), "(windows)")
	assert.Contains(t, buf.String(), "- redistributable_bin/win64/steam_api64.lib")
	assert.NotContains(t, buf.String(), "- redistributable_bin/win64/steam_api64.dll")
}

func TestCheck_UsesOnlyThePlatformManifest(t *testing.T) {
	logger.ForTest(t)
	c := newChecker(t, "steamworks/redistributable_bin/linux64/libsteam_api.so")

	assert.True(t, c.Check(platform.Linux))
	assert.False(t, c.Check(platform.MacOS))
	assert.False(t, c.Check(platform.Windows))
}

func TestMissing_Counts(t *testing.T) {
	manifest := []string{"a/1.so", "a/2.so", "b/3.so", "b/4.so", "5.so"}
	present := []string{"a/2.so", "b/4.so"}

	files := []string{}
	for _, p := range present {
		files = append(files, "steamworks/"+p)
	}
	c := newChecker(t, files...)
	c.SDK.Manifest = map[platform.Platform][]string{platform.Linux: manifest}

	missing := c.Missing(platform.Linux)
	assert.Len(t, missing, len(manifest)-len(present))
	assert.Equal(t, []string{"a/1.so", "b/3.so", "5.so"}, missing)
	for _, p := range present {
		assert.NotContains(t, missing, p)
	}
}

func TestRoot_Absolute(t *testing.T) {
	c := Checker{Dir: "/proj", SDK: config.SDK{Root: "/opt/steamworks"}}
	assert.Equal(t, "/opt/steamworks", c.Root())
	assert.Equal(t, filepath.Join("/proj", "steamworks"), ResolveRoot("/proj", "steamworks"))
}
