package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/victorarias/toolpath/internal/config"
	"github.com/victorarias/toolpath/internal/logging"
	"github.com/victorarias/toolpath/internal/pathutil"
	"github.com/victorarias/toolpath/internal/toolpath"
)

var version = "dev"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	opts        []toolpath.Option
	verbose     bool
	augmentPath bool

	logger   *logging.Logger
	resolver *toolpath.Resolver
}

func main() {
	a := newApp()
	err := a.rootCmd().Execute()
	// cobra skips post-run hooks when RunE fails, so close here.
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp returns the CLI state. opts are appended to the resolver options,
// which lets tests swap the launcher and environment.
func newApp(opts ...toolpath.Option) *app {
	return &app{opts: opts}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "toolpath",
		Short:         "Find runnable copies of cargo, rustc and other tools",
		Long:          "toolpath resolves a tool via its $NAME override, then $PATH, then ~/.cargo/bin, and checks that `<tool> --version` runs.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every probe to stderr")
	root.PersistentFlags().BoolVar(&a.augmentPath, "augment-path", false, "add common tool directories to PATH before resolving")

	root.AddCommand(newResolveCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newEnvCmd(a))
	root.AddCommand(newWatchCmd(a))
	return root
}

// close flushes and closes the log file. Safe to call more than once.
func (a *app) close() {
	a.logger.Close()
	a.logger = nil
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Err(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring %s: %v\n", config.Path(), err)
	}

	if a.verbose {
		a.logger = logging.NewWriter(cmd.ErrOrStderr())
		a.logger.SetDebug(true)
	} else if l, err := logging.New(config.LogPath()); err == nil {
		a.logger = l
	} else {
		a.logger = logging.Nop()
	}

	augment, err := config.AugmentPath()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		a.logger.Errorf("config: %v", err)
	}
	if a.augmentPath || augment {
		if err := pathutil.EnsureGUIPath(); err != nil {
			return fmt.Errorf("augmenting PATH: %w", err)
		}
		a.logger.Debugf("PATH augmented: %s", os.Getenv("PATH"))
	}

	opts := append([]toolpath.Option{toolpath.WithLogger(a.logger)}, a.opts...)
	a.resolver = toolpath.New(opts...)
	return nil
}

// toolsOrDefault returns args, or the configured tool list when args is empty.
func toolsOrDefault(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return config.Tools()
}
