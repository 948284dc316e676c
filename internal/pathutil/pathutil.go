// Package pathutil provides home-relative tool directories and PATH helpers.
// Editors and other GUI apps on macOS often start with a minimal PATH that
// misses Homebrew, ~/.local/bin and ~/.cargo/bin, so bare tool names fail to
// resolve there even though they work in a terminal.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// CargoBinDir is where rustup installs cargo, rustc and friends.
func CargoBinDir(home string) string {
	return filepath.Join(home, ".cargo", "bin")
}

// CommonPaths returns paths that should be available but are often missing
// from GUI app environments.
func CommonPaths() []string {
	paths := []string{
		"/opt/homebrew/bin", // Homebrew on Apple Silicon
		"/opt/homebrew/sbin",
		"/usr/local/bin", // Homebrew on Intel Mac, also common for other tools
		"/usr/local/sbin",
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".local", "bin"),
			CargoBinDir(home),
		)
	}

	return paths
}

// MergePaths combines two PATH strings, preserving order and removing duplicates.
// Primary paths come first, then secondary paths that aren't already present.
func MergePaths(primary, secondary string) string {
	seen := make(map[string]bool)
	var merged []string

	sep := string(os.PathListSeparator)
	for _, pathList := range []string{primary, secondary} {
		for _, part := range strings.Split(pathList, sep) {
			if part != "" && !seen[part] {
				seen[part] = true
				merged = append(merged, part)
			}
		}
	}
	return strings.Join(merged, sep)
}

// AddExistingPaths adds paths that exist on disk to the current PATH.
// Returns the merged PATH string.
func AddExistingPaths(currentPath string, paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			currentPath = MergePaths(currentPath, p)
		}
	}
	return currentPath
}

// EnsureGUIPath merges system-configured and common tool directories into
// this process's PATH. Existing entries keep their order and priority.
func EnsureGUIPath() error {
	currentPath := os.Getenv("PATH")

	if sys := systemPaths(); sys != "" {
		currentPath = MergePaths(currentPath, sys)
	}
	currentPath = AddExistingPaths(currentPath, CommonPaths())

	return os.Setenv("PATH", currentPath)
}
