package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "workboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Output == "" {
		app.Output = OutputTable
	}

	root := &cobra.Command{
		Use:           "workboard",
		Short:         "Work center scheduling board",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Stderr == nil {
				app.Stderr = cmd.ErrOrStderr()
			}
			if app.Board != nil {
				return nil
			}
			return app.Open(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.Config.SeedPath, "seed", app.Config.SeedPath, "Seed file (.json, .yaml, .db); built-in board when empty")
	flags.Var(&timescaleValue{ts: &app.Config.Timescale}, "scale", "Grid timescale")
	flags.BoolVar(&app.Config.Strict, "strict", app.Config.Strict, "Reject overlapping work orders in the store")
	flags.IntVar(&app.Config.LaneHeight, "lane-height", app.Config.LaneHeight, "Lane height in pixels")
	flags.BoolVar(&app.Config.Log, "log", app.Config.Log, "Log service use cases to stderr")
	flags.StringVar(&app.Config.MetricsFile, "metrics-file", app.Config.MetricsFile, "Write Prometheus metrics to this textfile on exit")
	flags.VarP(&outputValue{out: &app.Output}, "output", "o", "Output format")

	root.AddCommand(
		newBoardCmd(app),
		newOrderCmd(app),
		newCenterCmd(app),
		newApplyCmd(app),
		newSeedCmd(app),
	)

	return root
}
