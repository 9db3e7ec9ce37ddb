package cli

import (
	"time"

	"github.com/alexanderramin/workboard/internal/cli/formatter"
	"github.com/alexanderramin/workboard/internal/contract"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var from, to, today *time.Time
	var centers []string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Lay out the board and print lanes, bars and grid units",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.printBoard(cmd, contract.BoardRequest{
				From:          from,
				To:            to,
				Today:         today,
				WorkCenterIDs: centers,
			})
		},
	}

	dateFlag(cmd.Flags(), &from, "from", "First visible date (default today-14)")
	dateFlag(cmd.Flags(), &to, "to", "Last visible date (default today+14)")
	dateFlag(cmd.Flags(), &today, "today", "Reference date for the range and today marker")
	cmd.Flags().StringSliceVar(&centers, "center", nil, "Only show these work center IDs")

	return cmd
}

func (a *App) printBoard(cmd *cobra.Command, req contract.BoardRequest) error {
	req.Timescale = string(a.Config.Timescale)
	req.LaneHeight = a.Config.LaneHeight
	resp, err := a.Board.Board(cmd.Context(), req)
	if err != nil {
		return err
	}
	return a.render(cmd.OutOrStdout(), resp, func() string {
		return formatter.FormatBoard(resp)
	})
}
