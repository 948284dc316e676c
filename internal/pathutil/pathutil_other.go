//go:build !darwin

package pathutil

// systemPaths has nothing to add outside macOS; login shells and desktop
// sessions already export the system PATH there.
func systemPaths() string {
	return ""
}
