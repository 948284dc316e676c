//go:build darwin

package pathutil

import (
	"os/exec"
	"strings"
)

// systemPaths returns the PATH that /usr/libexec/path_helper builds from
// /etc/paths and /etc/paths.d/*.
func systemPaths() string {
	cmd := exec.Command("/usr/libexec/path_helper", "-s")
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return extractPathFromShellOutput(string(output))
}

// extractPathFromShellOutput parses the output of `path_helper -s`
// which outputs: PATH="..."; export PATH;
func extractPathFromShellOutput(output string) string {
	const prefix = "PATH=\""
	start := strings.Index(output, prefix)
	if start == -1 {
		return ""
	}
	start += len(prefix)
	end := strings.Index(output[start:], "\"")
	if end == -1 {
		return ""
	}
	return output[start : start+end]
}
