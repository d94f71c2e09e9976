package installer

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setup-build-env/internal/config"
	"setup-build-env/internal/logger"
	"setup-build-env/internal/platform"
	"setup-build-env/internal/runner"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func newDeps(r *runner.Fake, fs afero.Fs, vars map[string]string) Deps {
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	return Deps{Runner: r, Fs: fs, Getenv: env(vars), Packages: config.Default().Packages}
}

func TestNew_SelectsVariant(t *testing.T) {
	for _, p := range platform.All() {
		in, err := New(p, Deps{})
		require.NoError(t, err)
		assert.Equal(t, p, in.Platform())
	}

	_, err := New(platform.Platform("solaris"), Deps{})
	assert.True(t, errors.Is(err, platform.ErrUnsupported))
}

func TestPlan_Invocation(t *testing.T) {
	p := &Plan{Command: []string{"sudo", "pacman", "-S", "--noconfirm"}, Packages: []string{"glfw", "boost"}}
	c := p.Invocation()
	assert.Equal(t, "sudo", c.Name)
	assert.True(t, c.Stream)
	assert.Equal(t, "sudo pacman -S --noconfirm glfw boost", p.String())
	assert.Equal(t, []string{"sudo", "pacman", "-S", "--noconfirm"}, p.Command, "Command is not modified")
}

func TestWindows(t *testing.T) {
	const root = `/vcpkg`
	exe := root + "/vcpkg.exe"

	withVcpkg := func(t *testing.T) afero.Fs {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, exe, []byte("MZ"), 0o755))
		return fs
	}

	t.Run("env var unset", func(t *testing.T) {
		buf := logger.ForTest(t)
		f := runner.NewFake()
		in, _ := New(platform.Windows, newDeps(f, withVcpkg(t), nil))

		assert.False(t, in.Install())
		assert.Empty(t, f.Calls, "no install attempted")
		assert.Contains(t, buf.String(), "VCPKG_ROOT environment variable is not set")
		assert.Contains(t, buf.String(), "https://github.com/microsoft/vcpkg")
	})

	t.Run("path missing", func(t *testing.T) {
		logger.ForTest(t)
		f := runner.NewFake()
		in, _ := New(platform.Windows, newDeps(f, nil, map[string]string{"VCPKG_ROOT": root}))

		_, err := in.Resolve()
		assert.ErrorContains(t, err, "not a directory")
		assert.False(t, in.Install())
		assert.Empty(t, f.Calls)
	})

	t.Run("helper missing", func(t *testing.T) {
		logger.ForTest(t)
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll(root, 0o755))
		f := runner.NewFake()
		in, _ := New(platform.Windows, newDeps(f, fs, map[string]string{"VCPKG_ROOT": root}))

		_, err := in.Resolve()
		assert.ErrorContains(t, err, "vcpkg executable not found")
		assert.False(t, in.Install())
		assert.Empty(t, f.Calls)
	})

	t.Run("installs", func(t *testing.T) {
		buf := logger.ForTest(t)
		f := runner.NewFake().Succeed(exe+" install glfw3 boost-system", "")
		in, _ := New(platform.Windows, newDeps(f, withVcpkg(t), map[string]string{"VCPKG_ROOT": root}))

		plan, err := in.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "vcpkg", plan.Manager)

		assert.True(t, in.Install())
		assert.Equal(t, []string{exe + " install glfw3 boost-system"}, f.CommandLines())
		assert.Contains(t, buf.String(), "✓ Windows dependencies installed")
	})

	t.Run("install fails", func(t *testing.T) {
		buf := logger.ForTest(t)
		f := runner.NewFake().Fail(exe+" install glfw3 boost-system", 1)
		in, _ := New(platform.Windows, newDeps(f, withVcpkg(t), map[string]string{"VCPKG_ROOT": root}))

		assert.False(t, in.Install())
		assert.Contains(t, buf.String(), "✗ Windows dependency installation failed (status 1)")
	})
}

func TestLinux_ManagerPriority(t *testing.T) {
	tests := []struct {
		name    string
		onPath  []string
		want    string
		command string
	}{
		{name: "apt only", onPath: []string{"apt"}, want: "apt", command: "sudo apt install -y libglfw3-dev libboost-system-dev"},
		{name: "apt wins over everything", onPath: []string{"pacman", "dnf", "yum", "apt"}, want: "apt", command: "sudo apt install -y libglfw3-dev libboost-system-dev"},
		{name: "yum before dnf", onPath: []string{"dnf", "yum"}, want: "yum", command: "sudo yum install -y glfw-devel boost-devel"},
		{name: "dnf", onPath: []string{"dnf"}, want: "dnf", command: "sudo dnf install -y glfw-devel boost-devel"},
		{name: "pacman", onPath: []string{"pacman"}, want: "pacman", command: "sudo pacman -S --noconfirm glfw boost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger.ForTest(t)
			f := runner.NewFake().Succeed("sudo -v", "").Succeed(tt.command, "")
			for _, m := range tt.onPath {
				f.OnPath(m, "/usr/bin/"+m)
			}
			in, _ := New(platform.Linux, newDeps(f, nil, nil))

			plan, err := in.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.Manager)
			assert.Equal(t, tt.command, plan.String())

			f.Calls = nil
			assert.True(t, in.Install())
			assert.Equal(t, []string{"sudo -v", tt.command}, f.CommandLines())
		})
	}
}

func TestLinux_Failures(t *testing.T) {
	t.Run("no sudo", func(t *testing.T) {
		buf := logger.ForTest(t)
		f := runner.NewFake().Fail("sudo -v", 1).OnPath("apt", "/usr/bin/apt")
		in, _ := New(platform.Linux, newDeps(f, nil, nil))

		assert.False(t, in.Install())
		assert.Equal(t, []string{"sudo -v"}, f.CommandLines())
		assert.Empty(t, f.Lookups, "package managers are not probed without privileges")
		assert.Contains(t, buf.String(), "sudo privileges are required")
	})

	t.Run("no package manager", func(t *testing.T) {
		buf := logger.ForTest(t)
		f := runner.NewFake().Succeed("sudo -v", "")
		in, _ := New(platform.Linux, newDeps(f, nil, nil))

		assert.False(t, in.Install())
		assert.Equal(t, []string{"apt", "yum", "dnf", "pacman"}, f.Lookups)
		assert.Equal(t, []string{"sudo -v"}, f.CommandLines())
		assert.Contains(t, buf.String(), "no supported package manager found (apt, yum, dnf, pacman)")
	})

	t.Run("install fails", func(t *testing.T) {
		buf := logger.ForTest(t)
		f := runner.NewFake().Succeed("sudo -v", "").OnPath("apt", "/usr/bin/apt").
			Fail("sudo apt install -y libglfw3-dev libboost-system-dev", 100)
		in, _ := New(platform.Linux, newDeps(f, nil, nil))

		assert.False(t, in.Install())
		assert.Contains(t, buf.String(), "✗ Linux dependency installation failed (status 100)")
	})
}

func TestLinux_WithoutElevation(t *testing.T) {
	logger.ForTest(t)
	f := runner.NewFake().OnPath("apt", "/usr/bin/apt").Succeed("apt install -y libglfw3-dev libboost-system-dev", "")
	d := newDeps(f, nil, nil)
	d.Packages.Linux.Elevate = ""
	in, _ := New(platform.Linux, d)

	assert.True(t, in.Install())
	assert.Equal(t, []string{"apt install -y libglfw3-dev libboost-system-dev"}, f.CommandLines())
}

func TestMacOS(t *testing.T) {
	t.Run("brew missing", func(t *testing.T) {
		buf := logger.ForTest(t)
		f := runner.NewFake()
		in, _ := New(platform.MacOS, newDeps(f, nil, nil))

		assert.False(t, in.Install())
		assert.Empty(t, f.Calls)
		assert.Contains(t, buf.String(), "Homebrew (brew) not found")
		assert.Contains(t, buf.String(), "Homebrew/install/HEAD/install.sh")
	})

	t.Run("installs", func(t *testing.T) {
		logger.ForTest(t)
		f := runner.NewFake().OnPath("brew", "/opt/homebrew/bin/brew").Succeed("brew install glfw boost", "")
		in, _ := New(platform.MacOS, newDeps(f, nil, nil))

		assert.True(t, in.Install())
		assert.Equal(t, []string{"brew install glfw boost"}, f.CommandLines())
	})

	t.Run("install fails", func(t *testing.T) {
		logger.ForTest(t)
		f := runner.NewFake().OnPath("brew", "/opt/homebrew/bin/brew").Fail("brew install glfw boost", 1)
		in, _ := New(platform.MacOS, newDeps(f, nil, nil))

		assert.False(t, in.Install())
	})
}
