// Package commands implements the selbounds command line.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/layout"

	// Register the layout engines.
	_ "github.com/gogpu/selbounds/layout/legacy"
	_ "github.com/gogpu/selbounds/layout/ng"
)

var (
	engine  string
	verbose bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "selbounds",
		Short:         "Replay selection scenarios and inspect recorded handle bounds",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				selbounds.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	cmd.PersistentFlags().StringVar(&engine, "engine", "", "layout engine, overrides the scenario (one of "+engineList()+")")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log lifecycle details to stderr")
	cmd.AddCommand(newRunCmd(), newDrawCmd())
	return cmd
}

func engineList() string {
	names := layout.Engines()
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
