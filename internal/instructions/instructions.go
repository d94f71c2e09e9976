// Package instructions prints the manual build steps for each platform.
package instructions

import (
	"bytes"
	"text/template"

	"github.com/cockroachdb/errors"

	"setup-build-env/internal/config"
	"setup-build-env/internal/logger"
	"setup-build-env/internal/platform"
)

const windowsSteps = `
{{.Title}} build steps:
1. Create the build directory:
   mkdir {{.BuildDir}}
   cd {{.BuildDir}}

2. Configure CMake:
   cmake .. -DCMAKE_TOOLCHAIN_FILE=%VCPKG_ROOT%/scripts/buildsystems/vcpkg.cmake

3. Build the project:
   cmake --build . --config Release

4. Run the program:
   Release\{{.Name}}.exe
`

const unixSteps = `
{{.Title}} build steps:
1. Create the build directory:
   mkdir {{.BuildDir}}
   cd {{.BuildDir}}

2. Configure CMake:
   cmake ..

3. Build the project:
   make

4. Run the program:
   ./{{.Name}}
`

var templates = map[platform.Platform]*template.Template{
	platform.Windows: template.Must(template.New("windows").Parse(windowsSteps)),
	platform.Linux:   template.Must(template.New("linux").Parse(unixSteps)),
	platform.MacOS:   template.Must(template.New("macos").Parse(unixSteps)),
}

// Presenter renders the build steps for the configured project.
type Presenter struct {
	Project config.Project
}

// Text returns the build steps for p.
func (pr Presenter) Text(p platform.Platform) (string, error) {
	tmpl, ok := templates[p]
	if !ok {
		return "", errors.Wrapf(platform.ErrUnsupported, "no build instructions for %q", p)
	}

	data := struct {
		Title    string
		Name     string
		BuildDir string
	}{
		Title:    p.Title(),
		Name:     pr.Project.Name,
		BuildDir: pr.Project.BuildDir,
	}
	if data.BuildDir == "" {
		data.BuildDir = "build"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "rendering %s instructions", p)
	}
	return buf.String(), nil
}

// Present prints the build steps for p.
func (pr Presenter) Present(p platform.Platform) {
	text, err := pr.Text(p)
	if err != nil {
		logger.Error("✗ %v\n", err)
		return
	}
	logger.Plain("%s", text)
}
