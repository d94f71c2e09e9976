package prereq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"setup-build-env/internal/config"
	"setup-build-env/internal/logger"
	"setup-build-env/internal/runner"
)

var tools = []config.ToolRequirement{
	{Name: "git", Command: "git", Args: []string{"--version"}, Label: "Git", Hint: "install Git first"},
	{Name: "cmake", Command: "cmake", Args: []string{"--version"}, Label: "CMake", Hint: "install CMake 3.10 or newer first"},
	{Name: "ninja", Command: "ninja", Args: []string{"--version"}},
}

func TestProbe(t *testing.T) {
	f := runner.NewFake().Succeed("git --version", "git version 2.44.0").Fail("cmake --version", 2)

	assert.True(t, Probe(f, "git", "--version"))
	assert.False(t, Probe(f, "cmake", "--version"), "non-zero exit")
	assert.False(t, Probe(f, "ninja", "--version"), "missing executable")
}

func TestDiagnose(t *testing.T) {
	f := runner.NewFake().Fail("cmake --version", 2)

	assert.Equal(t, "ok", Diagnose(runner.Result{}))
	assert.Equal(t, "exited with status 2", Diagnose(f.Run(runner.Cmd("cmake", "--version"))))
	assert.Equal(t, "not found on PATH", Diagnose(f.Run(runner.Cmd("ninja"))))
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name    string
		fake    *runner.Fake
		want    bool
		outputs []string
	}{
		{
			name: "all present",
			fake: runner.NewFake().
				Succeed("git --version", "").
				Succeed("cmake --version", "").
				Succeed("ninja --version", ""),
			want:    true,
			outputs: []string{"✓ Git found", "✓ CMake found", "✓ ninja found"},
		},
		{
			name: "first missing still checks the rest",
			fake: runner.NewFake().
				Succeed("cmake --version", "").
				Succeed("ninja --version", ""),
			want:    false,
			outputs: []string{"✗ Git not found on PATH, install Git first", "✓ CMake found", "✓ ninja found"},
		},
		{
			name: "broken tool",
			fake: runner.NewFake().
				Succeed("git --version", "").
				Fail("cmake --version", 1).
				Succeed("ninja --version", ""),
			want:    false,
			outputs: []string{"✓ Git found", "✗ CMake exited with status 1, install CMake 3.10 or newer first"},
		},
		{
			name:    "nothing installed",
			fake:    runner.NewFake(),
			want:    false,
			outputs: []string{"✗ Git", "✗ CMake", "✗ ninja not found on PATH\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := logger.ForTest(t)

			got := Checker{Runner: tt.fake}.CheckAll(tools)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"git --version", "cmake --version", "ninja --version"}, tt.fake.CommandLines(),
				"every probe runs exactly once, in order")
			for _, line := range tt.outputs {
				assert.Contains(t, buf.String(), line)
			}
		})
	}
}

func TestCheckAll_Empty(t *testing.T) {
	logger.ForTest(t)
	f := runner.NewFake()
	assert.True(t, Checker{Runner: f}.CheckAll(nil))
	assert.Empty(t, f.Calls)
}
