package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/victorarias/toolpath/internal/status"
	"github.com/victorarias/toolpath/internal/toolpath"
)

// DefaultInterval is how often tools are re-resolved.
const DefaultInterval = 5 * time.Second

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // resolved
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // missing
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea model for the dashboard
type Model struct {
	resolver  *toolpath.Resolver
	tools     []string
	checks    []toolpath.Check
	cursor    int
	checkedAt time.Time
	resolving bool
	interval  time.Duration
	// tickGen identifies the live tick chain; ticks from older chains are
	// dropped.
	tickGen int
}

// NewModel creates a new dashboard model
func NewModel(r *toolpath.Resolver, tools []string) *Model {
	return &Model{
		resolver: r,
		tools:    tools,
		interval: DefaultInterval,
	}
}

// SetInterval changes the refresh interval. Zero disables auto-refresh.
func (m *Model) SetInterval(d time.Duration) {
	m.interval = d
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	m.resolving = true
	return m.refresh
}

// refresh resolves every tool. Each probe spawns a process, so this runs as a
// tea.Cmd off the UI loop.
func (m *Model) refresh() tea.Msg {
	if m.resolver == nil {
		return checksMsg{at: time.Now()}
	}
	return checksMsg{checks: m.resolver.CheckAll(m.tools), at: time.Now()}
}

type checksMsg struct {
	checks []toolpath.Check
	at     time.Time
}

type tickMsg struct {
	gen int
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "r":
			if !m.resolving {
				m.resolving = true
				m.tickGen++
				return m, m.refresh
			}
		}
	case checksMsg:
		m.checks = msg.checks
		m.checkedAt = msg.at
		m.resolving = false
		// Ensure cursor is valid
		if m.cursor >= len(m.checks) && len(m.checks) > 0 {
			m.cursor = len(m.checks) - 1
		}
		return m, m.tickCmd()
	case tickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		if !m.resolving {
			m.resolving = true
			return m, m.refresh
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.checks) {
		m.cursor = len(m.checks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SelectedCheck returns the currently selected check
func (m *Model) SelectedCheck() *toolpath.Check {
	if m.cursor >= 0 && m.cursor < len(m.checks) {
		return &m.checks[m.cursor]
	}
	return nil
}

func (m *Model) tickCmd() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	gen := m.tickGen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// View renders the dashboard
func (m *Model) View() string {
	if len(m.tools) == 0 {
		return "No tools to resolve\n\nPress 'q' to quit"
	}
	if m.checks == nil {
		return "Resolving...\n"
	}

	s := titleStyle.Render("Tools") + "\n"
	s += strings.Repeat("─", 60) + "\n"

	for i, c := range m.checks {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		if c.OK() {
			s += fmt.Sprintf("%s%s %-15s %-8s %s\n",
				cursor, okStyle.Render("●"), c.Name, c.Result.Source, c.Result.Path)
		} else {
			s += fmt.Sprintf("%s%s %-15s %s\n",
				cursor, failStyle.Render("○"), c.Name, failStyle.Render("missing"))
		}
	}

	s += strings.Repeat("─", 60) + "\n"

	// Detail panel for selected tool
	if selected := m.SelectedCheck(); selected != nil {
		s += fmt.Sprintf("\n%s\n", titleStyle.Render(selected.Name))
		s += fmt.Sprintf("Override: $%s\n", toolpath.OverrideVar(selected.Name))
		if selected.OK() {
			s += fmt.Sprintf("Path: %s\n", selected.Result.Path)
		} else {
			s += fmt.Sprintf("Error: %s\n", selected.Err)
		}
	}

	s += strings.Repeat("─", 60) + "\n"
	if summary := status.Format(m.checks); summary != "" {
		s += failStyle.Render(summary) + "\n"
	} else {
		s += okStyle.Render("all tools resolved") + "\n"
	}
	s += mutedStyle.Render(fmt.Sprintf("checked %s", formatAge(time.Since(m.checkedAt)))) + "\n"
	s += "[r] Refresh   [j/k] Move   [q] Quit\n"

	return s
}

func formatAge(d time.Duration) string {
	if d < time.Second {
		return "just now"
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds ago", minutes, seconds)
}
