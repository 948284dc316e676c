package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/victorarias/toolpath/internal/toolpath"
)

const maxLabels = 2

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Format summarizes checks on one line, e.g. "2/3 resolved, missing: rustfmt".
// It returns "" when every tool resolved.
func Format(checks []toolpath.Check) string {
	var missing []string
	for _, c := range checks {
		if !c.OK() {
			missing = append(missing, c.Name)
		}
	}

	if len(missing) == 0 {
		return ""
	}

	labels := missing
	if len(labels) > maxLabels {
		labels = labels[:maxLabels]
	}
	labelStr := strings.Join(labels, ", ")
	if len(missing) > maxLabels {
		labelStr += "..."
	}

	return fmt.Sprintf("%d/%d resolved, missing: %s", len(checks)-len(missing), len(checks), labelStr)
}

// Table renders one row per check: marker, name, source and path or error.
func Table(checks []toolpath.Check) string {
	width := len("TOOL")
	for _, c := range checks {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s  %-8s  %s", width, "TOOL", "SOURCE", "PATH")))
	b.WriteString("\n")
	for _, c := range checks {
		if c.OK() {
			fmt.Fprintf(&b, "%s %-*s  %s  %s\n",
				okStyle.Render("✓"), width, c.Name,
				mutedStyle.Render(fmt.Sprintf("%-8s", c.Result.Source)), c.Result.Path)
		} else {
			fmt.Fprintf(&b, "%s %-*s  %s  %s\n",
				failStyle.Render("✗"), width, c.Name,
				mutedStyle.Render(fmt.Sprintf("%-8s", "-")), failStyle.Render(c.Err.Error()))
		}
	}
	return b.String()
}
