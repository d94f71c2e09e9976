package platform

import (
	"runtime"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_KnownIdentities(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{goos: "windows", want: Windows},
		{goos: "linux", want: Linux},
		{goos: "darwin", want: MacOS},
		{goos: "Windows", want: Windows},
		{goos: "LINUX", want: Linux},
		{goos: "Darwin", want: MacOS},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := Detect(tt.goos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_UnknownIdentities(t *testing.T) {
	for _, goos := range []string{"freebsd", "", "macos", "linux ", "plan9", "darwin64"} {
		t.Run(goos, func(t *testing.T) {
			got, err := Detect(goos)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, ErrUnsupported))

			var upe *UnsupportedPlatformError
			require.True(t, errors.As(err, &upe))
			assert.Equal(t, goos, upe.OS)
		})
	}
}

func TestCurrent(t *testing.T) {
	got, err := Current()
	switch runtime.GOOS {
	case "windows", "linux", "darwin":
		require.NoError(t, err)
		assert.True(t, got.Valid())
	default:
		assert.Error(t, err)
	}
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Platform{"macos": MacOS, "darwin": MacOS, "Linux": Linux, "windows": Windows} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("beos")
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestAllAreValid(t *testing.T) {
	all := All()
	assert.Len(t, all, 3)
	for _, p := range all {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, Platform("darwin").Valid())
}
