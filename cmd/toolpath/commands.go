package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/victorarias/toolpath/internal/dashboard"
	"github.com/victorarias/toolpath/internal/status"
	"github.com/victorarias/toolpath/internal/toolpath"
)

func newResolveCmd(a *app) *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "resolve NAME",
		Short: "Print a runnable path for NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.resolver.Lookup(args[0])
			if err != nil {
				return err
			}
			if showSource {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.Path, res.Source)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showSource, "source", false, "also print where the path came from (override, path, fallback)")
	return cmd
}

// checkJSON is the --json form of a toolpath.Check.
type checkJSON struct {
	Name   string `json:"name"`
	Var    string `json:"override_var"`
	Path   string `json:"path,omitempty"`
	Source string `json:"source,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newCheckCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [NAME...]",
		Short: "Resolve several tools and report which are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := a.resolver.CheckAll(toolsOrDefault(args))

			if asJSON {
				out := make([]checkJSON, 0, len(checks))
				for _, c := range checks {
					j := checkJSON{Name: c.Name, Var: toolpath.OverrideVar(c.Name)}
					if c.OK() {
						j.Path = c.Result.Path
						j.Source = c.Result.Source.String()
					} else {
						j.Error = c.Err.Error()
					}
					out = append(out, j)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(out); err != nil {
					return fmt.Errorf("encoding checks: %w", err)
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), status.Table(checks))
			}

			if summary := status.Format(checks); summary != "" {
				return errors.New(summary)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func newEnvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env NAME",
		Short: "Print the override variable consulted for NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), toolpath.OverrideVar(args[0]))
			return nil
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [NAME...]",
		Short: "Live view of tool resolution",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := dashboard.NewModel(a.resolver, toolsOrDefault(args))
			m.SetInterval(interval)

			p := tea.NewProgram(m,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("dashboard: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", dashboard.DefaultInterval, "re-resolve interval, 0 to disable")
	return cmd
}
