package cli

import (
	"time"

	"github.com/alexanderramin/workboard/internal/cli/formatter"
	"github.com/alexanderramin/workboard/internal/contract"
	"github.com/alexanderramin/workboard/internal/domain"
	"github.com/spf13/cobra"
)

func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Inspect work orders",
	}

	cmd.AddCommand(
		newOrderListCmd(app),
		newOrderCheckCmd(app),
	)

	return cmd
}

func newOrderListCmd(app *App) *cobra.Command {
	var center string
	var today *time.Time

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			orders, err := app.Board.ListWorkOrders(ctx, center)
			if err != nil {
				return err
			}
			centers, err := app.Board.ListWorkCenters(ctx)
			if err != nil {
				return err
			}
			ref := time.Now()
			if today != nil {
				ref = *today
			}
			return app.render(cmd.OutOrStdout(), contract.NewWorkOrderViews(orders), func() string {
				return formatter.FormatWorkOrderList(orders, centers, ref)
			})
		},
	}

	cmd.Flags().StringVar(&center, "center", "", "Work center ID")
	dateFlag(cmd.Flags(), &today, "today", "Reference date for relative start")

	return cmd
}

func newOrderCheckCmd(app *App) *cobra.Command {
	var center, exclude string
	var start, end *time.Time

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a date range is free on a work center",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := app.Board.ListWorkOrders(ctx, center); err != nil {
				return err
			}
			req := contract.OverlapRequest{WorkCenterID: center, Start: *start, End: *end, ExcludeID: exclude}
			resp, err := app.Board.CheckOverlap(ctx, req)
			if err != nil {
				return err
			}
			if err := app.render(cmd.OutOrStdout(), resp, func() string {
				return formatter.FormatOverlap(req, resp)
			}); err != nil {
				return err
			}
			// A taken range exits non-zero so scripts can branch on it.
			if resp.Overlap {
				return &domain.OverlapError{WorkCenterID: center, ConflictIDs: resp.Conflicts}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&center, "center", "", "Work center ID")
	dateFlag(cmd.Flags(), &start, "start", "Start date (YYYY-MM-DD)")
	dateFlag(cmd.Flags(), &end, "end", "End date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&exclude, "exclude", "", "Work order ID to ignore, e.g. the one being edited")
	_ = cmd.MarkFlagRequired("center")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
