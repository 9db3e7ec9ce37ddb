package cli

import (
	"fmt"

	"github.com/alexanderramin/workboard/internal/fixture"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create and check seed files",
		// Seed files are handled directly; no board is loaded.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}

	cmd.AddCommand(
		newSeedInitCmd(app),
		newSeedCheckCmd(app),
	)

	return cmd
}

func newSeedInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init PATH",
		Short: "Write the built-in board to a .json, .yaml or .db seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fixture.Save(cmd.Context(), args[0], fixture.DefaultSchema()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote seed %s\n", args[0])
			return nil
		},
	}
}

func newSeedCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH",
		Short: "Validate a seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := fixture.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d work centers, %d work orders\n",
				args[0], len(seed.WorkCenters), len(seed.WorkOrders))
			return nil
		},
	}
}
