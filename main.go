package main

import (
	"setup-build-env/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which parses the command line, runs the
// requested command and exits with its status.
//
// setup-build-env prepares a machine to build the ConnectTool C++ project:
//   - Verifies the required tools (Git, CMake) are installed
//   - Initializes and updates the git submodules
//   - Checks that the vendored Steamworks SDK is in place for the current platform
//   - Installs glfw and boost with vcpkg, the Linux package manager or Homebrew
//   - Prints the manual build steps
//
// Missing prerequisites and failed submodule syncs stop the run with exit code 1.
// A missing SDK or a failed dependency install is reported and the run still
// ends with the build steps and exit code 0.
func main() {
	cmd.Execute()
}
