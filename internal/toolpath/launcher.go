package toolpath

import (
	"errors"
	"os/exec"
)

// VersionFlag is passed to every candidate during validation. Supported
// executables (cargo, rustc, rustup, ...) must answer it without side effects
// and without reading stdin.
const VersionFlag = "--version"

// Launcher starts a process and waits for it to finish.
//
// Launch returns nil when the process ran to completion with a zero status,
// an *exec.ExitError when it ran to completion with a failure status, and any
// other error when the process could not be started at all.
type Launcher interface {
	Launch(name string, args ...string) error
}

// ExecLauncher launches real processes via os/exec. Output is discarded.
type ExecLauncher struct{}

var _ Launcher = ExecLauncher{}

func (ExecLauncher) Launch(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	// nil Stdout/Stderr/Stdin connect to the null device.
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	return cmd.Run()
}

// launched reports whether err from a Launcher means the process started and
// ran to completion, whatever its exit status.
func launched(err error) bool {
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
