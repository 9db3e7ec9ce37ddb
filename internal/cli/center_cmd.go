package cli

import (
	"github.com/alexanderramin/workboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

type centerView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

func newCenterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "centers",
		Aliases: []string{"center"},
		Short:   "List work centers and their booking counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			centers, err := app.Board.ListWorkCenters(ctx)
			if err != nil {
				return err
			}
			orders, err := app.Board.ListWorkOrders(ctx, "")
			if err != nil {
				return err
			}
			counts := make(map[string]int, len(centers))
			for _, o := range orders {
				counts[o.WorkCenterID]++
			}

			views := make([]centerView, 0, len(centers))
			for _, c := range centers {
				views = append(views, centerView{ID: c.ID, Name: c.Name, Orders: counts[c.ID]})
			}
			return app.render(cmd.OutOrStdout(), views, func() string {
				return formatter.FormatWorkCenterList(centers, counts)
			})
		},
	}
}
